package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/logging"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/service"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "validation", "error", err)
		return failWithDetails(c, http.StatusBadRequest, "invalid body", err)
	}

	token, user, err := h.Svc.Login(ctx, req.ID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			l.Warn("login_failed", "status", 401, "login_id", req.ID)
			return fail(c, http.StatusUnauthorized, "invalid id or password")
		case errors.Is(err, service.ErrInactiveAccount):
			l.Warn("login_failed", "status", 403, "login_id", req.ID)
			return fail(c, http.StatusForbidden, "account deactivated")
		default:
			l.Error("login_failed", "status", 500, "error", err)
			return failWithDetails(c, http.StatusInternalServerError, "Database query failed", err)
		}
	}

	l.Info("login_success", "user_idx", user.Idx)
	return c.JSON(http.StatusOK, transport.LoginResponse{
		Success:     true,
		AccessToken: token,
		UserIdx:     user.Idx,
		IsAdmin:     user.IsAdmin,
	})
}
