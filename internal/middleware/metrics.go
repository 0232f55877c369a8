package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nthnyvllflrs/ascent-erp/pkg/metrics"
)

// Metrics records count and duration of every request by route template
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.ObserveHTTP(c.Request().Method, path, c.Response().Status, time.Since(start))

			return nil
		}
	}
}
