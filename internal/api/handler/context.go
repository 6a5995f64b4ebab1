package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the authenticated identity injected by the Auth
// middleware and performs a fast-fail check before any service call: a
// non-empty email proves the middleware ran.
func ctxIdentity(c echo.Context) (email string, admin bool, err error) {
	email, _ = c.Get("email").(string)
	if email == "" {
		return "", false, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	admin, _ = c.Get("admin").(bool)
	return email, admin, nil
}
