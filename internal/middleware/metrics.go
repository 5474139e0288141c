package middleware

import (
	"strconv"
	"time"

	"go-orderboard/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// MetricsMiddleware records a counter and latency histogram for every request.
func MetricsMiddleware(m *metrics.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		path := c.Route().Path
		m.RequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())

		return err
	}
}
