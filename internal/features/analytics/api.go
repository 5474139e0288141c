package analytics

import (
	"github.com/gofiber/fiber/v2"
)

type AnalyticsApi struct {
	AnalyticsController *AnalyticsController
}

func NewAnalyticsApi(analyticsController *AnalyticsController) *AnalyticsApi {
	return &AnalyticsApi{
		AnalyticsController: analyticsController,
	}
}

func (a *AnalyticsApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboard")

	group.Get("/data", a.AnalyticsController.GetDashboardData)
}
