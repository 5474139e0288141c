package analytics

import (
	"testing"
	"time"

	"go-orderboard/internal/features/order"
	"go-orderboard/internal/features/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableOrders() []order.Order {
	return []order.Order{
		{OrderID: "ORD-0002", Product: "Laptop", Status: "Completed", TotalAmount: 1200, CreatedAt: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{OrderID: "ORD-0001", Product: "Mouse", Status: "Pending", TotalAmount: 35, CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{OrderID: "ORD-0003", Product: "Laptop case", Status: "Completed", TotalAmount: 45, CreatedAt: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
	}
}

func TestTableDataProjectsColumns(t *testing.T) {
	cfg := widget.Config{Columns: []string{widget.FieldOrderID, widget.FieldProduct, widget.FieldStatus}}

	res := TableData(tableOrders(), cfg, 1)

	require.Len(t, res.Rows, 3)
	assert.Equal(t, []string{"ORD-0002", "Laptop", "Completed"}, res.Rows[0])
	assert.Equal(t, 3, res.TotalRows)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 1, res.CurrentPage)
}

func TestTableDataNoColumns(t *testing.T) {
	res := TableData(tableOrders(), widget.Config{}, 1)

	assert.Empty(t, res.Rows)
	assert.Equal(t, 0, res.TotalRows)
	assert.Equal(t, 1, res.CurrentPage)
}

func TestTableDataEqualsFilter(t *testing.T) {
	cfg := widget.Config{
		Columns:     []string{widget.FieldOrderID, widget.FieldStatus},
		ApplyFilter: true,
		Filters:     []widget.Filter{{Attribute: widget.FieldStatus, Operator: widget.OpEquals, Value: "completed"}},
	}

	res := TableData(tableOrders(), cfg, 1)

	assert.Equal(t, 2, res.TotalRows)
}

func TestTableDataIncompleteFilterPassesAll(t *testing.T) {
	cfg := widget.Config{
		Columns:     []string{widget.FieldOrderID},
		ApplyFilter: true,
		Filters:     []widget.Filter{{Attribute: widget.FieldStatus, Operator: widget.OpEquals, Value: ""}},
	}

	res := TableData(tableOrders(), cfg, 1)

	assert.Equal(t, 3, res.TotalRows)
}

func TestTableDataContainsFilter(t *testing.T) {
	cfg := widget.Config{
		Columns:     []string{widget.FieldOrderID, widget.FieldProduct},
		ApplyFilter: true,
		Filters:     []widget.Filter{{Attribute: widget.FieldProduct, Operator: widget.OpContains, Value: "laptop"}},
	}

	res := TableData(tableOrders(), cfg, 1)

	assert.Equal(t, 2, res.TotalRows)
}

func TestTableDataNumericFilter(t *testing.T) {
	cfg := widget.Config{
		Columns:     []string{widget.FieldOrderID, widget.FieldTotalAmount},
		ApplyFilter: true,
		Filters:     []widget.Filter{{Attribute: widget.FieldTotalAmount, Operator: widget.OpGreater, Value: "40"}},
	}

	res := TableData(tableOrders(), cfg, 1)

	assert.Equal(t, 2, res.TotalRows)
}

func TestTableDataFiltersCompose(t *testing.T) {
	cfg := widget.Config{
		Columns:     []string{widget.FieldOrderID},
		ApplyFilter: true,
		Filters: []widget.Filter{
			{Attribute: widget.FieldStatus, Operator: widget.OpEquals, Value: "Completed"},
			{Attribute: widget.FieldTotalAmount, Operator: widget.OpLess, Value: "100"},
		},
	}

	res := TableData(tableOrders(), cfg, 1)

	require.Equal(t, 1, res.TotalRows)
	assert.Equal(t, "ORD-0003", res.Rows[0][0])
}

func TestTableDataSortAscending(t *testing.T) {
	cfg := widget.Config{
		Columns: []string{widget.FieldOrderID},
		SortBy:  "Ascending",
	}

	res := TableData(tableOrders(), cfg, 1)

	assert.Equal(t, "ORD-0001", res.Rows[0][0])
	assert.Equal(t, "ORD-0003", res.Rows[2][0])
}

func TestTableDataSortDescending(t *testing.T) {
	cfg := widget.Config{
		Columns: []string{widget.FieldOrderID},
		SortBy:  "Descending",
	}

	res := TableData(tableOrders(), cfg, 1)

	assert.Equal(t, "ORD-0003", res.Rows[0][0])
	assert.Equal(t, "ORD-0001", res.Rows[2][0])
}

func TestTableDataSortByOrderDate(t *testing.T) {
	cfg := widget.Config{
		Columns: []string{widget.FieldOrderID},
		SortBy:  widget.FieldOrderDate,
	}

	res := TableData(tableOrders(), cfg, 1)

	assert.Equal(t, "ORD-0001", res.Rows[0][0])
	assert.Equal(t, "ORD-0002", res.Rows[1][0])
	assert.Equal(t, "ORD-0003", res.Rows[2][0])
}

func TestTableDataPagination(t *testing.T) {
	orders := make([]order.Order, 12)
	for i := range orders {
		orders[i] = order.Order{OrderID: "ORD-0001", Product: "Thing"}
	}
	cfg := widget.Config{Columns: []string{widget.FieldProduct}, Pagination: 5}

	res := TableData(orders, cfg, 2)
	assert.Equal(t, 12, res.TotalRows)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 2, res.CurrentPage)
	assert.Len(t, res.Rows, 5)

	last := TableData(orders, cfg, 3)
	assert.Len(t, last.Rows, 2)
}

func TestTableDataOutOfRangePageResets(t *testing.T) {
	cfg := widget.Config{Columns: []string{widget.FieldOrderID}, Pagination: 5}

	res := TableData(tableOrders(), cfg, 9)

	assert.Equal(t, 1, res.CurrentPage)
	assert.Len(t, res.Rows, 3)
}

func TestTableDataEmptyCellsRenderDash(t *testing.T) {
	cfg := widget.Config{Columns: []string{widget.FieldCustomerName, widget.FieldUnitPrice}}

	res := TableData([]order.Order{{OrderID: "ORD-0001"}}, cfg, 1)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"-", "-"}, res.Rows[0])
}
