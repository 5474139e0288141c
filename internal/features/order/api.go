package order

import (
	"github.com/gofiber/fiber/v2"
)

type OrderApi struct {
	OrderController *OrderController
}

func NewOrderApi(orderController *OrderController) *OrderApi {
	return &OrderApi{
		OrderController: orderController,
	}
}

func (a *OrderApi) Setup(app *fiber.App) {
	group := app.Group("/api/orders")

	group.Post("/", a.OrderController.CreateOrder)
	group.Get("/", a.OrderController.GetAllOrders)
	group.Get("/export", a.OrderController.ExportOrders)
	group.Get("/:id", a.OrderController.GetOrderByID)
	group.Put("/:id", a.OrderController.UpdateOrder)
	group.Patch("/:id", a.OrderController.UpdateOrder)
	group.Delete("/:id", a.OrderController.DeleteOrder)
}
