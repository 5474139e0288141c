package analytics

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalyticsController struct {
	AnalyticsService AnalyticsService
	Logger           *zap.Logger
}

func NewAnalyticsController(analyticsService AnalyticsService, logger *zap.Logger) *AnalyticsController {
	return &AnalyticsController{
		AnalyticsService: analyticsService,
		Logger:           logger,
	}
}

// GetDashboardData godoc
// @Summary Get computed widget data
// @Description Compute every widget's data against the current order set
// @Tags dashboard
// @Produce json
// @Param userId query string false "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboard/data [get]
func (ctrl *AnalyticsController) GetDashboardData(c *fiber.Ctx) error {
	data, err := ctrl.AnalyticsService.DashboardData(c.UserContext(), c.Query("userId"))
	if err != nil {
		ctrl.Logger.Error("failed to compute dashboard data", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to compute dashboard data",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}
