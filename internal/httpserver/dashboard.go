package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/logging"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/service"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

// defaultDashboardSize matches the number of chart segments the admin
// dashboard renders per widget.
const defaultDashboardSize = 5

type DashboardHTTP struct {
	Svc *service.DashboardService
}

func parseDashboardSize(c echo.Context) (int, error) {
	v := c.QueryParam("Size")
	if v == "" {
		return defaultDashboardSize, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("Size must be a positive integer")
	}
	return n, nil
}

func (h *DashboardHTTP) SalesByMonth(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.sales_by_month")

	size, err := parseDashboardSize(c)
	if err != nil {
		l.Warn("sales_by_month_failed", "status", 400, "reason", "bad size")
		return fail(c, http.StatusBadRequest, "Size must be a positive integer")
	}

	rows, err := h.Svc.SalesByMonth(ctx, size)
	if err != nil {
		l.Error("sales_by_month_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Database query failed", err)
	}

	return c.JSON(http.StatusOK, transport.Response{Success: true, Data: rows})
}

func (h *DashboardHTTP) SalesByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.sales_by_category")

	size, err := parseDashboardSize(c)
	if err != nil {
		l.Warn("sales_by_category_failed", "status", 400, "reason", "bad size")
		return fail(c, http.StatusBadRequest, "Size must be a positive integer")
	}

	rows, err := h.Svc.SalesByCategory(ctx, size)
	if err != nil {
		l.Error("sales_by_category_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Database query failed", err)
	}

	return c.JSON(http.StatusOK, transport.Response{Success: true, Data: rows})
}

func (h *DashboardHTTP) SalesByBrand(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.sales_by_brand")

	size, err := parseDashboardSize(c)
	if err != nil {
		l.Warn("sales_by_brand_failed", "status", 400, "reason", "bad size")
		return fail(c, http.StatusBadRequest, "Size must be a positive integer")
	}

	rows, err := h.Svc.SalesByBrand(ctx, size)
	if err != nil {
		l.Error("sales_by_brand_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Database query failed", err)
	}

	return c.JSON(http.StatusOK, transport.Response{Success: true, Data: rows})
}
