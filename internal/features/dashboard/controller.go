package dashboard

import (
	"errors"

	"go-orderboard/internal/common/apperr"
	"go-orderboard/internal/features/widget"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardController struct {
	DashboardService DashboardService
	Logger           *zap.Logger
}

func NewDashboardController(dashboardService DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		Logger:           logger,
	}
}

type saveDashboardRequest struct {
	UserID     string          `json:"userId"`
	Widgets    []widget.Widget `json:"widgets"`
	DateFilter string          `json:"dateFilter"`
}

// GetDashboard godoc
// @Summary Get dashboard configuration
// @Description Fetch the saved widget layout, or the empty default
// @Tags dashboard
// @Produce json
// @Param userId query string false "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboard [get]
func (ctrl *DashboardController) GetDashboard(c *fiber.Ctx) error {
	d, err := ctrl.DashboardService.Get(c.UserContext(), c.Query("userId"))
	if err != nil {
		return ctrl.fail(c, err, "Failed to fetch dashboard")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"widgets":    d.Widgets,
			"dateFilter": d.DateFilter,
		},
	})
}

// SaveDashboard godoc
// @Summary Save dashboard configuration
// @Description Upsert the whole widget layout for a user
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboard [post]
func (ctrl *DashboardController) SaveDashboard(c *fiber.Ctx) error {
	var req saveDashboardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Widgets must be an array",
			"error":   err.Error(),
		})
	}

	stored, err := ctrl.DashboardService.Save(c.UserContext(), req.UserID, req.Widgets, req.DateFilter)
	if err != nil {
		return ctrl.fail(c, err, "Failed to save dashboard")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Dashboard saved successfully",
		"data": fiber.Map{
			"widgets":    stored.Widgets,
			"dateFilter": stored.DateFilter,
		},
	})
}

// ResetDashboard godoc
// @Summary Reset dashboard configuration
// @Description Delete the saved layout, restoring the empty default
// @Tags dashboard
// @Produce json
// @Param userId query string false "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboard [delete]
func (ctrl *DashboardController) ResetDashboard(c *fiber.Ctx) error {
	if err := ctrl.DashboardService.Reset(c.UserContext(), c.Query("userId")); err != nil {
		return ctrl.fail(c, err, "Failed to reset dashboard")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Dashboard reset successfully",
	})
}

func (ctrl *DashboardController) fail(c *fiber.Ctx, err error, message string) error {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": ve.Error(),
			"errors":  ve.Fields,
		})
	default:
		ctrl.Logger.Error(message, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": message,
			"error":   err.Error(),
		})
	}
}
