// Package server assembles the Echo instance: middleware, health, metrics
// and the HR and inventory API groups.
package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nthnyvllflrs/ascent-erp/internal/handler"
	mid "github.com/nthnyvllflrs/ascent-erp/internal/middleware"
	"github.com/nthnyvllflrs/ascent-erp/internal/service"
	"github.com/nthnyvllflrs/ascent-erp/internal/store"
	"github.com/nthnyvllflrs/ascent-erp/internal/validation"
	"github.com/nthnyvllflrs/ascent-erp/pkg/config"
	"github.com/nthnyvllflrs/ascent-erp/pkg/jwtutil"
	"github.com/nthnyvllflrs/ascent-erp/pkg/logger"
	"github.com/nthnyvllflrs/ascent-erp/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the long-lived resources the server is built from
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// New builds the router with every route registered
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(mid.RequestID())
	e.Use(mid.Metrics(d.Metrics))
	e.Use(logger.Middleware())

	e.GET("/health", handler.NewHealthHandler(d.DB).Check)
	if d.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(d.Gatherer)))
	}

	api := e.Group("/api")
	if d.Config.Auth.Enabled {
		api.Use(mid.JWTAuth(jwtutil.NewJWTUtil(d.Config.JWT.SigningKey), d.Metrics))
	} else {
		logger.GetLogger().Warn("Bearer authentication disabled", zap.Bool("auth_enabled", false))
	}

	pages := handler.NewPaginator(d.Config.Pagination)

	employees := api.Group("/hr/employees")
	handler.NewEmployeeHandler(service.NewEmployeeService(store.NewEmployeeStore(d.DB), d.Metrics), pages).Routes(employees)
	handler.NewCompensationHandler(service.NewCompensationService(store.NewCompensationStore(d.DB), d.Metrics)).Routes(employees)

	handler.NewAdditionHandler(service.NewAdditionService(store.NewAdditionStore(d.DB), d.Metrics), pages).
		Routes(api.Group("/hr/additions"))
	handler.NewHolidayHandler(service.NewHolidayService(store.NewHolidayStore(d.DB), d.Metrics), pages).
		Routes(api.Group("/hr/holidays"))
	handler.NewInventoryHandler(service.NewInventoryService(store.NewInventoryStore(d.DB), d.Metrics), pages).
		Routes(api.Group("/inventory/items"))

	return e
}
