package order

import (
	"errors"

	"go-orderboard/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type OrderController struct {
	OrderService OrderService
	Logger       *zap.Logger
}

func NewOrderController(orderService OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{
		OrderService: orderService,
		Logger:       logger,
	}
}

// CreateOrder godoc
// @Summary Create order
// @Description Create a new order with generated sequential identifiers
// @Tags orders
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *fiber.Ctx) error {
	var in CreateOrderInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	created, err := ctrl.OrderService.Create(c.UserContext(), &in)
	if err != nil {
		return ctrl.fail(c, err, "Failed to create order")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order created successfully",
		"data":    created,
	})
}

// GetAllOrders godoc
// @Summary List orders
// @Description List orders filtered by status, newest first
// @Tags orders
// @Produce json
// @Param status query string false "Order status"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/orders [get]
func (ctrl *OrderController) GetAllOrders(c *fiber.Ctx) error {
	status := c.Query("status")
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 10))

	orders, pagination, err := ctrl.OrderService.List(c.UserContext(), status, page, limit)
	if err != nil {
		return ctrl.fail(c, err, "Failed to fetch orders")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       orders,
		"pagination": pagination,
	})
}

// GetOrderByID godoc
// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *fiber.Ctx) error {
	o, err := ctrl.OrderService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return ctrl.fail(c, err, "Failed to fetch order")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    o,
	})
}

// UpdateOrder godoc
// @Summary Update order
// @Description Partially update an order; identity fields and timestamps are ignored
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/orders/{id} [put]
func (ctrl *OrderController) UpdateOrder(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	updated, err := ctrl.OrderService.Update(c.UserContext(), c.Params("id"), fields)
	if err != nil {
		return ctrl.fail(c, err, "Failed to update order")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order updated successfully",
		"data":    updated,
	})
}

// DeleteOrder godoc
// @Summary Delete order
// @Tags orders
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *fiber.Ctx) error {
	if err := ctrl.OrderService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return ctrl.fail(c, err, "Failed to delete order")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order deleted successfully",
	})
}

// ExportOrders godoc
// @Summary Export orders
// @Description Download all orders as an xlsx spreadsheet
// @Tags orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]interface{}
// @Router /api/orders/export [get]
func (ctrl *OrderController) ExportOrders(c *fiber.Ctx) error {
	data, filename, err := ctrl.OrderService.ExportXLSX(c.UserContext())
	if err != nil {
		return ctrl.fail(c, err, "Failed to export orders")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// fail maps the error taxonomy onto HTTP statuses with the shared envelope.
func (ctrl *OrderController) fail(c *fiber.Ctx, err error, message string) error {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": ve.Error(),
			"errors":  ve.Fields,
		})
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Order not found",
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
