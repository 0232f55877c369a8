package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"github.com/nthnyvllflrs/ascent-erp/internal/service"
	"github.com/nthnyvllflrs/ascent-erp/internal/store"
	"github.com/nthnyvllflrs/ascent-erp/internal/validation"
	"github.com/nthnyvllflrs/ascent-erp/pkg/logger"
	"go.uber.org/zap"
)

const entityHoliday = "Holiday"

// HolidayHandler serves /api/hr/holidays
type HolidayHandler struct {
	service *service.HolidayService
	pages   Paginator
}

// NewHolidayHandler creates a HolidayHandler
func NewHolidayHandler(svc *service.HolidayService, pages Paginator) *HolidayHandler {
	return &HolidayHandler{service: svc, pages: pages}
}

// Routes registers the holiday endpoints on g
func (h *HolidayHandler) Routes(g *echo.Group) {
	g.GET("/index", h.Index)
	g.POST("/store", h.Store)
	g.GET("/show/:id", h.Show)
	g.PUT("/update/:id", h.Update)
	g.DELETE("/destroy/:id", h.Destroy)
}

// Index lists holidays in calendar order, optionally narrowed by ?year= and ?type=
func (h *HolidayHandler) Index(c echo.Context) error {
	log := logger.FromContext(c)

	filter, err := holidayFilter(c)
	if err != nil {
		return fail(c, entityHoliday, "list", err)
	}
	if filter.Year > 0 || filter.Type != "" {
		log.Info("Filtering holidays", zap.Int("year", filter.Year), zap.String("type", filter.Type))
	}

	page, err := h.service.List(c.Request().Context(), filter, h.pages.Request(c))
	if err != nil {
		return fail(c, entityHoliday, "list", err)
	}
	return c.JSON(http.StatusOK, page)
}

func holidayFilter(c echo.Context) (store.HolidayFilter, error) {
	var filter store.HolidayFilter

	if year := c.QueryParam("year"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil || y < 1 || y > 9999 {
			return filter, validation.Field("year", "The year field must be a valid year.")
		}
		filter.Year = y
	}

	if typ := c.QueryParam("type"); typ != "" {
		if typ != model.HolidayTypeRegular && typ != model.HolidayTypeSpecial {
			return filter, validation.Field("type", "The selected type is invalid; allowed: REGULAR, SPECIAL.")
		}
		filter.Type = typ
	}
	return filter, nil
}

// Store creates a holiday
func (h *HolidayHandler) Store(c echo.Context) error {
	var in service.HolidayInput
	if err := bind(c, &in); err != nil {
		return fail(c, entityHoliday, "create", err)
	}

	holiday, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, entityHoliday, "create", err)
	}

	logger.FromContext(c).Info("Holiday created successfully",
		zap.Uint("holiday_id", holiday.ID),
		zap.String("date", holiday.Date.String()),
		zap.String("type", holiday.Type))
	return c.JSON(http.StatusCreated, holiday)
}

// Show returns one holiday
func (h *HolidayHandler) Show(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityHoliday)
	}

	holiday, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, entityHoliday, "get", err)
	}
	return c.JSON(http.StatusOK, holiday)
}

// Update replaces a holiday
func (h *HolidayHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityHoliday)
	}

	var in service.HolidayInput
	if err := bind(c, &in); err != nil {
		return fail(c, entityHoliday, "update", err)
	}

	holiday, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return fail(c, entityHoliday, "update", err)
	}

	logger.FromContext(c).Info("Holiday updated successfully", zap.Uint("holiday_id", id))
	return c.JSON(http.StatusOK, holiday)
}

// Destroy deletes a holiday
func (h *HolidayHandler) Destroy(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityHoliday)
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return fail(c, entityHoliday, "delete", err)
	}

	logger.FromContext(c).Info("Holiday deleted successfully", zap.Uint("holiday_id", id))
	return c.NoContent(http.StatusNoContent)
}
