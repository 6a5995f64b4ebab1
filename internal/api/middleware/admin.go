package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminOnly allows the request through only when the authenticated account
// carries the admin flag. Must run after Auth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin, _ := c.Get("admin").(bool)
			if !admin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
