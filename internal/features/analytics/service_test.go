package analytics

import (
	"context"
	"testing"

	"go-orderboard/internal/features/dashboard"
	"go-orderboard/internal/features/order"
	"go-orderboard/internal/features/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDashboardService struct {
	get func(ctx context.Context, userID string) (*dashboard.Dashboard, error)
}

func (f *fakeDashboardService) Get(ctx context.Context, userID string) (*dashboard.Dashboard, error) {
	return f.get(ctx, userID)
}
func (f *fakeDashboardService) Save(ctx context.Context, userID string, widgets []widget.Widget, dateFilter string) (*dashboard.Dashboard, error) {
	return nil, nil
}
func (f *fakeDashboardService) Reset(ctx context.Context, userID string) error { return nil }

type fakeOrderService struct {
	all func(ctx context.Context) ([]order.Order, error)
}

func (f *fakeOrderService) Create(ctx context.Context, in *order.CreateOrderInput) (*order.Order, error) {
	return nil, nil
}
func (f *fakeOrderService) List(ctx context.Context, status string, page, limit int64) ([]order.Order, order.Pagination, error) {
	return nil, order.Pagination{}, nil
}
func (f *fakeOrderService) Get(ctx context.Context, id string) (*order.Order, error) {
	return nil, nil
}
func (f *fakeOrderService) Update(ctx context.Context, id string, fields map[string]interface{}) (*order.Order, error) {
	return nil, nil
}
func (f *fakeOrderService) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeOrderService) All(ctx context.Context) ([]order.Order, error) {
	return f.all(ctx)
}
func (f *fakeOrderService) ExportXLSX(ctx context.Context) ([]byte, string, error) {
	return nil, "", nil
}

func TestDashboardDataComputesEveryWidget(t *testing.T) {
	kpi := widget.New(1, widget.TypeKPI)
	kpi.Config = widget.Config{Metric: widget.FieldTotalAmount, Aggregation: "Sum", DataFormat: "Currency", DecimalPrecision: 2}

	pie := widget.New(2, widget.TypePie)
	pie.Config = widget.Config{ChartData: widget.FieldStatus}

	table := widget.New(3, widget.TypeTable)
	table.Config = widget.Config{Columns: []string{widget.FieldProduct}}

	ds := &fakeDashboardService{
		get: func(ctx context.Context, userID string) (*dashboard.Dashboard, error) {
			return &dashboard.Dashboard{
				UserID:     "u1",
				Widgets:    []widget.Widget{kpi, pie, table},
				DateFilter: "all-time",
			}, nil
		},
	}
	os := &fakeOrderService{
		all: func(ctx context.Context) ([]order.Order, error) {
			return []order.Order{
				{OrderID: "ORD-0001", Product: "Laptop", Status: "Pending", TotalAmount: 10},
				{OrderID: "ORD-0002", Product: "Mouse", Status: "Completed", TotalAmount: 20},
			}, nil
		},
	}

	svc := NewAnalyticsService(ds, os, zap.NewNop())
	data, err := svc.DashboardData(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, data, 3)

	kpiData, ok := data["1"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "$30.00", kpiData["value"])

	slices, ok := data["2"].([]Slice)
	require.True(t, ok)
	assert.Len(t, slices, 2)

	tableData, ok := data["3"].(TableResult)
	require.True(t, ok)
	assert.Equal(t, 2, tableData.TotalRows)
}

func TestDashboardDataEmptyDashboard(t *testing.T) {
	ds := &fakeDashboardService{
		get: func(ctx context.Context, userID string) (*dashboard.Dashboard, error) {
			return &dashboard.Dashboard{UserID: "u1", Widgets: []widget.Widget{}, DateFilter: "all-time"}, nil
		},
	}
	os := &fakeOrderService{
		all: func(ctx context.Context) ([]order.Order, error) { return []order.Order{}, nil },
	}

	svc := NewAnalyticsService(ds, os, zap.NewNop())
	data, err := svc.DashboardData(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, data)
}
