package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nthnyvllflrs/ascent-erp/internal/service"
	"github.com/nthnyvllflrs/ascent-erp/pkg/logger"
	"go.uber.org/zap"
)

const entityCompensation = "Compensation"

// CompensationHandler serves the compensation of a single employee
type CompensationHandler struct {
	service *service.CompensationService
}

func NewCompensationHandler(svc *service.CompensationService) *CompensationHandler {
	return &CompensationHandler{service: svc}
}

// Routes registers the compensation endpoints on the employees group
func (h *CompensationHandler) Routes(g *echo.Group) {
	g.GET("/show/:id/compensation", h.Show)
	g.PUT("/update/:id/compensation", h.Update)
}

func (h *CompensationHandler) Show(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityCompensation)
	}

	compensation, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, entityCompensation, "get", err)
	}
	return c.JSON(http.StatusOK, compensation)
}

func (h *CompensationHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityEmployee)
	}

	var in service.CompensationInput
	if err := bind(c, &in); err != nil {
		return fail(c, entityCompensation, "update", err)
	}

	compensation, err := h.service.Replace(c.Request().Context(), id, in)
	if err != nil {
		// only the owning employee can be missing here
		return fail(c, entityEmployee, "update", err)
	}

	log.Info("Compensation replaced successfully",
		zap.Uint("employee_id", id),
		zap.Uint("compensation_id", compensation.ID))
	return c.JSON(http.StatusOK, compensation)
}
