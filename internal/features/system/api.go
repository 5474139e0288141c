package system

import (
	"go-orderboard/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type SystemApi struct {
	Metrics *metrics.Registry
}

func NewSystemApi(m *metrics.Registry) *SystemApi {
	return &SystemApi{Metrics: m}
}

func (a *SystemApi) Setup(app *fiber.App) {
	app.Get("/health", a.Health)
	app.Get("/metrics", adaptor.HTTPHandler(a.Metrics.Handler()))
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (a *SystemApi) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"status":  "ok",
	})
}
