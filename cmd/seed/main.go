package main

import (
	"context"

	"go-orderboard/internal/config"
	"go-orderboard/internal/database"
	"go-orderboard/internal/features/order"
	"go-orderboard/internal/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var demoOrders = []order.CreateOrderInput{
	{FirstName: "Alice", LastName: "Johnson", Email: "alice.johnson@example.com", PhoneNumber: "555-0101", StreetAddress: "12 Maple St", City: "Springfield", State: "IL", PostalCode: "62701", Country: "USA", Product: "Laptop", Quantity: 1, UnitPrice: 1200, TotalAmount: 1200, Status: order.StatusCompleted},
	{FirstName: "Bob", LastName: "Smith", Email: "bob.smith@example.com", PhoneNumber: "555-0102", StreetAddress: "34 Oak Ave", City: "Madison", State: "WI", PostalCode: "53703", Country: "USA", Product: "Monitor", Quantity: 2, UnitPrice: 250, TotalAmount: 500, Status: order.StatusPending},
	{FirstName: "Carol", LastName: "Nguyen", Email: "carol.nguyen@example.com", PhoneNumber: "555-0103", StreetAddress: "56 Pine Rd", City: "Austin", State: "TX", PostalCode: "73301", Country: "USA", Product: "Keyboard", Quantity: 3, UnitPrice: 80, TotalAmount: 240, Status: order.StatusInProgress},
	{FirstName: "Alice", LastName: "Johnson", Email: "alice.johnson@example.com", PhoneNumber: "555-0101", StreetAddress: "12 Maple St", City: "Springfield", State: "IL", PostalCode: "62701", Country: "USA", Product: "Mouse", Quantity: 2, UnitPrice: 35, TotalAmount: 70, Status: order.StatusCompleted},
	{FirstName: "David", LastName: "Lee", Email: "david.lee@example.com", PhoneNumber: "555-0104", StreetAddress: "78 Birch Ln", City: "Denver", State: "CO", PostalCode: "80201", Country: "USA", Product: "Laptop", Quantity: 1, UnitPrice: 1400, TotalAmount: 1400, Status: order.StatusPending},
	{FirstName: "Elena", LastName: "Garcia", Email: "elena.garcia@example.com", PhoneNumber: "555-0105", StreetAddress: "90 Cedar Ct", City: "Seattle", State: "WA", PostalCode: "98101", Country: "USA", Product: "Monitor", Quantity: 1, UnitPrice: 300, TotalAmount: 300, Status: order.StatusCompleted},
	{FirstName: "Frank", LastName: "Miller", Email: "frank.miller@example.com", PhoneNumber: "555-0106", StreetAddress: "21 Elm St", City: "Boston", State: "MA", PostalCode: "02108", Country: "USA", Product: "Headphones", Quantity: 4, UnitPrice: 60, TotalAmount: 240, Status: order.StatusInProgress},
	{FirstName: "Grace", LastName: "Kim", Email: "grace.kim@example.com", PhoneNumber: "555-0107", StreetAddress: "43 Walnut Dr", City: "Portland", State: "OR", PostalCode: "97201", Country: "USA", Product: "Webcam", Quantity: 1, UnitPrice: 95, TotalAmount: 95, Status: order.StatusPending},
}

// Seed inserts the demo orders through the service so IDs, defaults and
// validation behave exactly as they do for API clients.
func Seed(
	lc fx.Lifecycle,
	orderRepo order.OrderRepository,
	orderService order.OrderService,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				logger.Info("Seeding demo orders...")

				if err := orderRepo.EnsureIndexes(ctx); err != nil {
					logger.Error("Failed to ensure order indexes", zap.Error(err))
					return
				}

				created := 0
				for _, in := range demoOrders {
					in := in
					o, err := orderService.Create(ctx, &in)
					if err != nil {
						logger.Error("Failed to seed order", zap.String("email", in.Email), zap.Error(err))
						continue
					}
					logger.Info("Seeded order", zap.String("orderId", o.OrderID), zap.String("customerId", o.CustomerID))
					created++
				}

				logger.Info("Seeding finished", zap.Int("created", created))
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			order.NewOrderRepository,
			order.NewIDGenerator,
			order.NewOrderService,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
