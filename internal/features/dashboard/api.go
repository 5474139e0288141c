package dashboard

import (
	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	DashboardController *DashboardController
}

func NewDashboardApi(dashboardController *DashboardController) *DashboardApi {
	return &DashboardApi{
		DashboardController: dashboardController,
	}
}

func (a *DashboardApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboard")

	group.Get("/", a.DashboardController.GetDashboard)
	group.Post("/", a.DashboardController.SaveDashboard)
	group.Delete("/", a.DashboardController.ResetDashboard)
}
