package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-orderboard/internal/api"
	"go-orderboard/internal/config"
	"go-orderboard/internal/database"
	"go-orderboard/internal/features/analytics"
	"go-orderboard/internal/features/dashboard"
	"go-orderboard/internal/features/order"
	"go-orderboard/internal/features/system"
	"go-orderboard/internal/logger"
	"go-orderboard/internal/metrics"
	"go-orderboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config, m *metrics.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware(cfg.AllowOrigins))
	app.Use(middleware.MetricsMiddleware(m))

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(lc fx.Lifecycle, orderRepo order.OrderRepository, dashboardRepo dashboard.DashboardRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := orderRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure order indexes: %v", err)
				}
				if err := dashboardRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure dashboard indexes: %v", err)
				}
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Metrics
			metrics.NewRegistry,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repository
			order.NewOrderRepository,
			dashboard.NewDashboardRepository,

			// Initialize Service
			order.NewIDGenerator,
			order.NewOrderService,
			dashboard.NewDashboardService,
			analytics.NewAnalyticsService,

			// Initialize Controller
			order.NewOrderController,
			dashboard.NewDashboardController,
			analytics.NewAnalyticsController,

			// Initialize API Routes
			AsRoute(order.NewOrderApi),
			AsRoute(dashboard.NewDashboardApi),
			AsRoute(analytics.NewAnalyticsApi),
			AsRoute(system.NewSystemApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			InitializeIndexes,
		),
	)

	app.Run()
}
