package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nthnyvllflrs/ascent-erp/internal/service"
	"github.com/nthnyvllflrs/ascent-erp/pkg/logger"
	"go.uber.org/zap"
)

const entityEmployee = "Employee"

// EmployeeHandler serves /api/hr/employees
type EmployeeHandler struct {
	service *service.EmployeeService
	pages   Paginator
}

// NewEmployeeHandler creates an EmployeeHandler
func NewEmployeeHandler(svc *service.EmployeeService, pages Paginator) *EmployeeHandler {
	return &EmployeeHandler{service: svc, pages: pages}
}

// Routes registers the employee endpoints on g
func (h *EmployeeHandler) Routes(g *echo.Group) {
	g.GET("/index", h.Index)
	g.POST("/store", h.Store)
	g.GET("/show/:id", h.Show)
	g.PUT("/update/:id", h.Update)
	g.DELETE("/destroy/:id", h.Destroy)
}

// Index lists employees with their compensation, one page at a time
func (h *EmployeeHandler) Index(c echo.Context) error {
	log := logger.FromContext(c)
	req := h.pages.Request(c)
	log.Info("Listing employees", zap.Int("page", req.Page), zap.Int("per_page", req.PerPage))

	page, err := h.service.List(c.Request().Context(), req)
	if err != nil {
		return fail(c, entityEmployee, "list", err)
	}

	log.Info("Employees retrieved successfully", zap.Int("count", len(page.Data)), zap.Int64("total", page.Total))
	return c.JSON(http.StatusOK, page)
}

// Store creates an employee and its compensation
func (h *EmployeeHandler) Store(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new employee")

	var in service.EmployeeInput
	if err := bind(c, &in); err != nil {
		return fail(c, entityEmployee, "create", err)
	}

	employee, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, entityEmployee, "create", err)
	}

	log.Info("Employee created successfully",
		zap.Uint("employee_id", employee.ID),
		zap.String("department", employee.Department))
	return c.JSON(http.StatusCreated, employee)
}

// Show returns one employee with its compensation
func (h *EmployeeHandler) Show(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityEmployee)
	}

	employee, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, entityEmployee, "get", err)
	}
	return c.JSON(http.StatusOK, employee)
}

// Update replaces an employee and its compensation
func (h *EmployeeHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityEmployee)
	}
	log.Info("Updating employee", zap.Uint("employee_id", id))

	var in service.EmployeeInput
	if err := bind(c, &in); err != nil {
		return fail(c, entityEmployee, "update", err)
	}

	employee, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return fail(c, entityEmployee, "update", err)
	}

	log.Info("Employee updated successfully", zap.Uint("employee_id", id))
	return c.JSON(http.StatusOK, employee)
}

// Destroy deletes an employee and its compensation
func (h *EmployeeHandler) Destroy(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseID(c)
	if !ok {
		return notFound(c, entityEmployee)
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return fail(c, entityEmployee, "delete", err)
	}

	log.Info("Employee deleted successfully", zap.Uint("employee_id", id))
	return c.NoContent(http.StatusNoContent)
}
