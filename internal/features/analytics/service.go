package analytics

import (
	"context"
	"strconv"
	"time"

	"go-orderboard/internal/features/dashboard"
	"go-orderboard/internal/features/order"
	"go-orderboard/internal/features/widget"

	"go.uber.org/zap"
)

type AnalyticsService interface {
	DashboardData(ctx context.Context, userID string) (map[string]interface{}, error)
}

type AnalyticsServiceImpl struct {
	DashboardService dashboard.DashboardService
	OrderService     order.OrderService
	Logger           *zap.Logger
}

func NewAnalyticsService(dashboardService dashboard.DashboardService, orderService order.OrderService, logger *zap.Logger) AnalyticsService {
	return &AnalyticsServiceImpl{
		DashboardService: dashboardService,
		OrderService:     orderService,
		Logger:           logger,
	}
}

// DashboardData computes every widget's data against the current order set,
// keyed by widget id. The dashboard's date filter is applied once up front.
func (s *AnalyticsServiceImpl) DashboardData(ctx context.Context, userID string) (map[string]interface{}, error) {
	d, err := s.DashboardService.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders, err := s.OrderService.All(ctx)
	if err != nil {
		return nil, err
	}

	orders = FilterByDate(orders, d.DateFilter, time.Now())

	data := make(map[string]interface{}, len(d.Widgets))
	for _, w := range d.Widgets {
		data[strconv.FormatInt(w.ID, 10)] = widgetData(orders, w)
	}

	s.Logger.Debug("dashboard data computed",
		zap.String("userId", d.UserID),
		zap.Int("widgets", len(d.Widgets)),
		zap.Int("orders", len(orders)))
	return data, nil
}

func widgetData(orders []order.Order, w widget.Widget) interface{} {
	switch w.Type {
	case widget.TypeKPI:
		value := KPIValue(orders, w.Config)
		return map[string]interface{}{
			"metric": w.Config.Metric,
			"value":  FormatKPI(value, w.Config),
		}
	case widget.TypeBar, widget.TypeLine, widget.TypeArea, widget.TypeScatter:
		return ChartSeries(orders, w.Config.XAxis, w.Config.YAxis)
	case widget.TypePie:
		return PieSlices(orders, w.Config.ChartData)
	case widget.TypeTable:
		return TableData(orders, w.Config, 1)
	default:
		return nil
	}
}
