package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/tokens"
)

// RequireAdmin guards mutating catalog routes: the request must carry a
// valid bearer token whose role claim is admin. The user's idx and login
// id are exposed to downstream handlers via the echo context.
func RequireAdmin(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			rawToken, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || rawToken == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := tokens.AccessClaimsFromToken(rawToken, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if claims.Role != "admin" {
				return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
			}

			c.Set("user_idx", claims.Subject)
			c.Set("login_id", claims.LoginID)
			return next(c)
		}
	}
}
