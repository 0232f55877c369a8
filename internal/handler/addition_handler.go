package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nthnyvllflrs/ascent-erp/internal/service"
	"github.com/nthnyvllflrs/ascent-erp/pkg/logger"
	"go.uber.org/zap"
)

const entityAddition = "Addition"

// AdditionHandler serves /api/hr/additions
type AdditionHandler struct {
	service *service.AdditionService
	pages   Paginator
}

func NewAdditionHandler(svc *service.AdditionService, pages Paginator) *AdditionHandler {
	return &AdditionHandler{service: svc, pages: pages}
}

func (h *AdditionHandler) Routes(g *echo.Group) {
	g.GET("/index", h.Index)
	g.POST("/store", h.Store)
	g.GET("/show/:id", h.Show)
	g.PUT("/update/:id", h.Update)
	g.DELETE("/destroy/:id", h.Destroy)
}

func (h *AdditionHandler) Index(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), h.pages.Request(c))
	if err != nil {
		return fail(c, entityAddition, "list", err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *AdditionHandler) Store(c echo.Context) error {
	var in service.AdditionInput
	if err := bind(c, &in); err != nil {
		return fail(c, entityAddition, "create", err)
	}

	addition, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, entityAddition, "create", err)
	}

	logger.FromContext(c).Info("Addition created successfully",
		zap.Uint("addition_id", addition.ID),
		zap.String("name", addition.Name))
	return c.JSON(http.StatusCreated, addition)
}

func (h *AdditionHandler) Show(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityAddition)
	}

	addition, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, entityAddition, "get", err)
	}
	return c.JSON(http.StatusOK, addition)
}

func (h *AdditionHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityAddition)
	}

	var in service.AdditionInput
	if err := bind(c, &in); err != nil {
		return fail(c, entityAddition, "update", err)
	}

	addition, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return fail(c, entityAddition, "update", err)
	}

	logger.FromContext(c).Info("Addition updated successfully", zap.Uint("addition_id", id))
	return c.JSON(http.StatusOK, addition)
}

func (h *AdditionHandler) Destroy(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityAddition)
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return fail(c, entityAddition, "delete", err)
	}

	logger.FromContext(c).Info("Addition deleted successfully", zap.Uint("addition_id", id))
	return c.NoContent(http.StatusNoContent)
}
