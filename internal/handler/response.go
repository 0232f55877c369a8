// Package handler exposes the HR and inventory services over Echo.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nthnyvllflrs/ascent-erp/internal/store"
	"github.com/nthnyvllflrs/ascent-erp/internal/validation"
	"github.com/nthnyvllflrs/ascent-erp/pkg/config"
	"github.com/nthnyvllflrs/ascent-erp/pkg/logger"
	"go.uber.org/zap"
)

var errMalformedBody = errors.New("malformed request body")

// Paginator turns page and per_page query parameters into a PageRequest
type Paginator struct {
	PageSize    int
	MaxPageSize int
}

// NewPaginator reads the page sizes from configuration
func NewPaginator(cfg config.PaginationConfig) Paginator {
	return Paginator{PageSize: cfg.PageSize, MaxPageSize: cfg.MaxPageSize}
}

// Request reads the page window of c. Missing or invalid values fall back
// to page 1 and the default size; per_page is capped at MaxPageSize.
func (p Paginator) Request(c echo.Context) store.PageRequest {
	req := store.PageRequest{Page: 1, PerPage: p.PageSize}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page > 0 {
		req.Page = page
	}
	if perPage, err := strconv.Atoi(c.QueryParam("per_page")); err == nil && perPage > 0 {
		req.PerPage = perPage
	}
	if req.PerPage > p.MaxPageSize {
		req.PerPage = p.MaxPageSize
	}
	return req
}

// parseID reads the :id path parameter. Zero and non-numeric ids never match
// a record.
func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// bind decodes the JSON body into i and validates it
func bind(c echo.Context, i interface{}) error {
	if err := c.Bind(i); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return validation.Field(typeErr.Field, typeMessage(typeErr))
		}
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return c.Validate(i)
}

func typeMessage(e *json.UnmarshalTypeError) string {
	label := "The " + strings.ReplaceAll(e.Field, "_", " ") + " field"
	switch e.Type.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return label + " must be a number."
	case reflect.String:
		return label + " must be a string."
	case reflect.Slice, reflect.Array:
		return label + " must be an array."
	case reflect.Struct, reflect.Map:
		return label + " must be an object."
	default:
		return label + " has an invalid type."
	}
}

func notFound(c echo.Context, entity string) error {
	return c.JSON(http.StatusNotFound, echo.Map{"message": entity + " not found"})
}

// fail writes the response for an error returned while serving entity
func fail(c echo.Context, entity, action string, err error) error {
	log := logger.FromContext(c)

	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		log.Info("Validation failed", zap.String("entity", entity), zap.Strings("fields", fieldNames(verr)))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"message": validation.Message,
			"errors":  verr.Fields,
		})
	case errors.Is(err, errMalformedBody):
		log.Warn("Invalid request data", zap.String("entity", entity), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	case errors.Is(err, store.ErrNotFound):
		log.Info(entity+" not found", zap.String("id", c.Param("id")))
		return notFound(c, entity)
	default:
		log.Error("Failed to "+action+" "+strings.ToLower(entity),
			zap.String("id", c.Param("id")),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Failed to " + action + " " + strings.ToLower(entity),
		})
	}
}

func fieldNames(verr *validation.Error) []string {
	names := make([]string, 0, len(verr.Fields))
	for k := range verr.Fields {
		names = append(names, k)
	}
	return names
}
