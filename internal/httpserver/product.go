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

type CatalogHTTP struct {
	Svc    *service.CatalogService
	Events *events.Producer
}

func (h *CatalogHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Events.PublishEvent(ctx, events.TopicProductEvents, fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("event_publish_failed", "topic", events.TopicProductEvents, "error", err)
	}
}

func parseProductFilter(c echo.Context) (transport.ProductFilter, error) {
	f := transport.ProductFilter{
		Name:     c.QueryParam("name"),
		Brand:    c.QueryParam("brand"),
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
	}

	switch f.Status {
	case "", models.ProductStatusAvailable, models.ProductStatusOutOfStock, models.ProductStatusDiscontinued:
	default:
		return f, fmt.Errorf("status must be one of available, out_of_stock, discontinued")
	}

	if v := c.QueryParam("minPrice"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, fmt.Errorf("minPrice must be a number")
		}
		f.MinPrice = &n
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, fmt.Errorf("maxPrice must be a number")
		}
		f.MaxPrice = &n
	}

	return f, nil
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	page, pageSize, err := util.ParsePagination(c.QueryParam("page"), c.QueryParam("pageSize"))
	if err != nil {
		l.Warn("get_products_failed", "status", 400, "reason", "bad pagination", "error", err)
		return fail(c, http.StatusBadRequest, err.Error())
	}

	f, err := parseProductFilter(c)
	if err != nil {
		l.Warn("get_products_failed", "status", 400, "reason", "bad filter", "error", err)
		return fail(c, http.StatusBadRequest, err.Error())
	}

	total, items, err := h.Svc.ListProducts(ctx, f, util.Offset(page, pageSize), pageSize)
	if err != nil {
		l.Error("get_products_failed", "status", 500, "error", err)
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

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		l.Warn("get_product_failed", "status", 400, "reason", "id must be a positive integer", "error", err)
		return fail(c, http.StatusBadRequest, "id must be a positive integer")
	}

	product, err := h.Svc.GetProduct(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_product_failed", "status", 404, "product_id", id)
			return fail(c, http.StatusNotFound, "Product not found")
		}
		l.Error("get_product_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Database query failed", err)
	}

	return c.JSON(http.StatusOK, transport.Response{Success: true, Data: product})
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "validation", "error", err)
		return failWithDetails(c, http.StatusBadRequest, "invalid body", err)
	}

	product := models.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		ImageLink:   req.ImageLink,
		Stock:       req.Stock,
		Status:      req.Status,
	}
	for _, color := range req.ProductColors {
		product.Colors = append(product.Colors, models.ProductColor{
			HexValue:  color.HexValue,
			ColorName: color.ColorName,
		})
	}

	productID, err := h.Svc.CreateProduct(ctx, &product)
	if err != nil {
		l.Error("create_product_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Database insertion failed", err)
	}

	h.publish(c, map[string]any{
		"type":      "product_created",
		"productID": productID,
		"name":      product.Name,
	})

	l.Info("create_product_success", "product_id", productID)
	return c.JSON(http.StatusCreated, transport.CreateProductResponse{
		Success:   true,
		Message:   "Product and colors inserted successfully",
		ProductID: productID,
	})
}

func (h *CatalogHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		l.Warn("update_product_failed", "status", 400, "reason", "id must be a positive integer", "error", err)
		return fail(c, http.StatusBadRequest, "id must be a positive integer")
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "validation", "error", err)
		return failWithDetails(c, http.StatusBadRequest, "invalid body", err)
	}

	if err := h.Svc.UpdateProduct(ctx, uint(id), req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_product_failed", "status", 404, "product_id", id)
			return fail(c, http.StatusNotFound, "Product not found or no changes made")
		}
		l.Error("update_product_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Database update failed", err)
	}

	h.publish(c, map[string]any{
		"type":      "product_updated",
		"productID": uint(id),
		"name":      req.Name,
	})

	l.Info("update_product_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.Response{Success: true, Message: "Product updated successfully"})
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		l.Warn("delete_product_failed", "status", 400, "reason", "id must be a positive integer", "error", err)
		return fail(c, http.StatusBadRequest, "id must be a positive integer")
	}

	if err := h.Svc.DeleteProduct(ctx, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_product_failed", "status", 404, "product_id", id)
			return fail(c, http.StatusNotFound, "Product not found")
		}
		l.Error("delete_product_failed", "status", 500, "error", err)
		return failWithDetails(c, http.StatusInternalServerError, "Database deletion failed", err)
	}

	h.publish(c, map[string]any{
		"type":      "product_deleted",
		"productID": uint(id),
	})

	l.Info("delete_product_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.Response{Success: true, Message: "Product deleted successfully"})
}
