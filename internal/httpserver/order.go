package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/logging"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/service"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/util"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func parseOrderFilter(c echo.Context) (transport.OrderFilter, error) {
	f := transport.OrderFilter{
		OrderNum: c.QueryParam("orderNum"),
		UserID:   c.QueryParam("userId"),
	}

	var err error
	if f.StartDate, err = parseDateParam("startDate", c.QueryParam("startDate")); err != nil {
		return f, err
	}
	if f.EndDate, err = parseDateParam("endDate", c.QueryParam("endDate")); err != nil {
		return f, err
	}

	return f, nil
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	page, pageSize, err := util.ParsePagination(c.QueryParam("page"), c.QueryParam("pageSize"))
	if err != nil {
		l.Warn("get_orders_failed", "status", 400, "reason", "bad pagination", "error", err)
		return fail(c, http.StatusBadRequest, err.Error())
	}

	f, err := parseOrderFilter(c)
	if err != nil {
		l.Warn("get_orders_failed", "status", 400, "reason", "bad filter", "error", err)
		return fail(c, http.StatusBadRequest, err.Error())
	}

	total, items, err := h.Svc.ListOrders(ctx, f, util.Offset(page, pageSize), pageSize)
	if err != nil {
		l.Error("get_orders_failed", "status", 500, "error", err)
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

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		l.Warn("get_order_failed", "status", 400, "reason", "id must be a positive integer", "error", err)
		return fail(c, http.StatusBadRequest, "id must be a positive integer")
	}

	order, err := h.Svc.GetOrder(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_order_failed", "status", 404, "order_id", id)
			return fail(c, http.StatusNotFound, "Order not found")
		}
		l.Error("get_order_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Database query failed", err)
	}

	return c.JSON(http.StatusOK, transport.Response{Success: true, Data: order})
}
