package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nthnyvllflrs/ascent-erp/internal/middleware"
	"github.com/nthnyvllflrs/ascent-erp/internal/service"
	"github.com/nthnyvllflrs/ascent-erp/internal/store"
	"github.com/nthnyvllflrs/ascent-erp/pkg/logger"
	"go.uber.org/zap"
)

const (
	entityInventoryItem = "Inventory item"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// InventoryHandler serves /api/inventory/items
type InventoryHandler struct {
	service *service.InventoryService
	pages   Paginator
}

// NewInventoryHandler creates an InventoryHandler
func NewInventoryHandler(svc *service.InventoryService, pages Paginator) *InventoryHandler {
	return &InventoryHandler{service: svc, pages: pages}
}

// Routes registers the inventory item endpoints on g
func (h *InventoryHandler) Routes(g *echo.Group) {
	g.GET("/index", h.Index)
	g.GET("/export", h.Export)
	g.POST("/store", h.Store)
	g.GET("/show/:id", h.Show)
	g.PUT("/update/:id", h.Update)
	g.DELETE("/destroy/:id", h.Destroy)
}

// Index lists items with their stock, optionally narrowed by ?status=
func (h *InventoryHandler) Index(c echo.Context) error {
	filter := store.InventoryFilter{Status: c.QueryParam("status")}

	page, err := h.service.List(c.Request().Context(), filter, h.pages.Request(c))
	if err != nil {
		return fail(c, entityInventoryItem, "list", err)
	}

	logger.FromContext(c).Info("Inventory items retrieved successfully",
		zap.Int("count", len(page.Data)),
		zap.String("status", filter.Status))
	return c.JSON(http.StatusOK, page)
}

// Export downloads every matching item as an xlsx workbook
func (h *InventoryHandler) Export(c echo.Context) error {
	log := logger.FromContext(c)
	filter := store.InventoryFilter{Status: c.QueryParam("status")}
	log.Info("Exporting inventory items", zap.String("status", filter.Status))

	var creator string
	if claims, ok := middleware.UserFromContext(c); ok {
		creator = claims.Email
	}

	buf, err := h.service.Export(c.Request().Context(), filter, creator)
	if err != nil {
		return fail(c, entityInventoryItem, "export", err)
	}

	filename := fmt.Sprintf("inventory_items_%s.xlsx", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))

	log.Info("Inventory export generated", zap.Int("bytes", buf.Len()))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Store creates an item and its stock
func (h *InventoryHandler) Store(c echo.Context) error {
	var in service.InventoryItemInput
	if err := bind(c, &in); err != nil {
		return fail(c, entityInventoryItem, "create", err)
	}

	item, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, entityInventoryItem, "create", err)
	}

	logger.FromContext(c).Info("Inventory item created successfully",
		zap.Uint("inventory_item_id", item.ID),
		zap.String("sku", item.SKU))
	return c.JSON(http.StatusCreated, item)
}

// Show returns one item with its stock
func (h *InventoryHandler) Show(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityInventoryItem)
	}

	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, entityInventoryItem, "get", err)
	}
	return c.JSON(http.StatusOK, item)
}

// Update replaces an item, and its stock when the body carries one
func (h *InventoryHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityInventoryItem)
	}

	var in service.InventoryItemInput
	if err := bind(c, &in); err != nil {
		return fail(c, entityInventoryItem, "update", err)
	}

	item, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return fail(c, entityInventoryItem, "update", err)
	}

	logger.FromContext(c).Info("Inventory item updated successfully",
		zap.Uint("inventory_item_id", id),
		zap.String("sku", item.SKU))
	return c.JSON(http.StatusOK, item)
}

// Destroy deletes an item and its stock
func (h *InventoryHandler) Destroy(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityInventoryItem)
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return fail(c, entityInventoryItem, "delete", err)
	}

	logger.FromContext(c).Info("Inventory item deleted successfully", zap.Uint("inventory_item_id", id))
	return c.NoContent(http.StatusNoContent)
}
