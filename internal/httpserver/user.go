package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/events"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/logging"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/models"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/service"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/util"
)

const dateLayout = "2006-01-02"

type UserHTTP struct {
	Svc    *service.UserService
	Events *events.Producer
}

func (h *UserHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Events.PublishEvent(ctx, events.TopicUserEvents, fmt.Sprint(event["userIdx"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("event_publish_failed", "topic", events.TopicUserEvents, "error", err)
	}
}

func parseBoolParam(name, v string) (*bool, error) {
	switch v {
	case "":
		return nil, nil
	case "true":
		b := true
		return &b, nil
	case "false":
		b := false
		return &b, nil
	default:
		return nil, fmt.Errorf("%s must be true or false", name)
	}
}

func parseDateParam(name, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date in YYYY-MM-DD form", name)
	}
	return &t, nil
}

func parseUserFilter(c echo.Context) (transport.UserFilter, error) {
	f := transport.UserFilter{
		ID:     c.QueryParam("id"),
		Name:   c.QueryParam("name"),
		Gender: c.QueryParam("gender"),
	}

	var err error
	if f.IsAdmin, err = parseBoolParam("is_admin", c.QueryParam("is_admin")); err != nil {
		return f, err
	}
	if f.IsActive, err = parseBoolParam("is_active", c.QueryParam("is_active")); err != nil {
		return f, err
	}
	if f.StartDate, err = parseDateParam("start_date", c.QueryParam("start_date")); err != nil {
		return f, err
	}
	if f.EndDate, err = parseDateParam("end_date", c.QueryParam("end_date")); err != nil {
		return f, err
	}

	return f, nil
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_users")

	page, pageSize, err := util.ParsePagination(c.QueryParam("page"), c.QueryParam("pageSize"))
	if err != nil {
		l.Warn("get_users_failed", "status", 400, "reason", "bad pagination", "error", err)
		return fail(c, http.StatusBadRequest, err.Error())
	}

	f, err := parseUserFilter(c)
	if err != nil {
		l.Warn("get_users_failed", "status", 400, "reason", "bad filter", "error", err)
		return fail(c, http.StatusBadRequest, err.Error())
	}

	total, items, err := h.Svc.ListUsers(ctx, f, util.Offset(page, pageSize), pageSize)
	if err != nil {
		l.Error("get_users_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Database query failed", err)
	}

	return c.JSON(http.StatusOK, transport.ListResponse{
		Success:    true,
		Data:       items,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: util.TotalPages(total, pageSize),
		Total:      total,
	})
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_user")

	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil || idx < 1 {
		l.Warn("get_user_failed", "status", 400, "reason", "idx must be a positive integer", "error", err)
		return fail(c, http.StatusBadRequest, "idx must be a positive integer")
	}

	user, err := h.Svc.GetUser(ctx, uint(idx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_user_failed", "status", 404, "user_idx", idx)
			return fail(c, http.StatusNotFound, "User not found")
		}
		l.Error("get_user_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Database query failed", err)
	}

	return c.JSON(http.StatusOK, transport.Response{Success: true, Data: user})
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_user")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_user_failed", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("create_user_failed", "status", 400, "reason", "validation", "error", err)
		return failWithDetails(c, http.StatusBadRequest, "invalid body", err)
	}

	user := models.User{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Gender:   req.Gender,
		PhoneNum: req.PhoneNum,
		Address:  req.Address,
		IsAdmin:  req.IsAdmin,
		IsActive: true,
	}

	userIdx, err := h.Svc.CreateUser(ctx, &user)
	if err != nil {
		l.Error("create_user_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Database insertion failed", err)
	}

	h.publish(c, map[string]any{
		"type":    "user_created",
		"userIdx": userIdx,
		"id":      user.ID,
	})

	l.Info("create_user_success", "user_idx", userIdx)
	return c.JSON(http.StatusCreated, transport.CreateUserResponse{
		Success: true,
		Message: "User inserted successfully",
		UserID:  userIdx,
	})
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_user")

	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil || idx < 1 {
		l.Warn("update_user_failed", "status", 400, "reason", "idx must be a positive integer", "error", err)
		return fail(c, http.StatusBadRequest, "idx must be a positive integer")
	}

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_user_failed", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("update_user_failed", "status", 400, "reason", "validation", "error", err)
		return failWithDetails(c, http.StatusBadRequest, "invalid body", err)
	}

	if err := h.Svc.UpdateUser(ctx, uint(idx), req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_user_failed", "status", 404, "user_idx", idx)
			return fail(c, http.StatusNotFound, "User not found or no changes made")
		}
		l.Error("update_user_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Database update failed", err)
	}

	h.publish(c, map[string]any{
		"type":    "user_updated",
		"userIdx": uint(idx),
	})

	l.Info("update_user_success", "user_idx", idx)
	return c.JSON(http.StatusOK, transport.Response{Success: true, Message: "User updated successfully"})
}

// DeactivateUser is the users' delete verb: it only flips is_active off,
// the row survives and stays readable.
func (h *UserHTTP) DeactivateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.deactivate_user")

	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil || idx < 1 {
		l.Warn("deactivate_user_failed", "status", 400, "reason", "idx must be a positive integer", "error", err)
		return fail(c, http.StatusBadRequest, "idx must be a positive integer")
	}

	if err := h.Svc.DeactivateUser(ctx, uint(idx)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("deactivate_user_failed", "status", 404, "user_idx", idx)
			return fail(c, http.StatusNotFound, "User not found")
		}
		l.Error("deactivate_user_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Failed to delete user account", err)
	}

	h.publish(c, map[string]any{
		"type":    "user_deactivated",
		"userIdx": uint(idx),
	})

	l.Info("deactivate_user_success", "user_idx", idx)
	return c.JSON(http.StatusOK, transport.Response{Success: true, Message: "User account deleted successfully"})
}
