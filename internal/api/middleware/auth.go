package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-tracker/internal/api/metrics"
	"github.com/fintrack/finance-tracker/internal/core/domain"
	"github.com/fintrack/finance-tracker/internal/core/ports"
)

// Auth validates the bearer JWT and injects the authenticated identity into
// context. Beyond signature and expiry, the subject is re-checked against
// the account store on every request: a deleted account fails immediately
// even while its tokens are still unexpired.
func Auth(accounts ports.AccountRepository, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectedTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectedTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthRejectedTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				metrics.AuthRejectedTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			// The token proves who the caller was at issuance; the store
			// decides whether that identity still exists.
			account, err := accounts.FindByEmail(c.Request().Context(), sub)
			if err != nil {
				if errors.Is(err, domain.ErrAccountNotFound) {
					metrics.AuthRejectedTotal.WithLabelValues("account_gone").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "account no longer exists")
				}
				return err
			}

			c.Set("email", account.Email)
			c.Set("admin", account.IsAdmin)

			return next(c)
		}
	}
}
