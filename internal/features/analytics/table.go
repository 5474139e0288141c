package analytics

import (
	"sort"
	"strconv"
	"strings"

	"go-orderboard/internal/features/order"
	"go-orderboard/internal/features/widget"
)

// TableResult is one page of a table widget projection.
type TableResult struct {
	Columns     []string   `json:"columns"`
	Rows        [][]string `json:"rows"`
	TotalRows   int        `json:"totalRows"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
}

// TableData applies the widget's filters, sort and pagination to the orders
// and projects the selected columns. A widget with no columns configured
// yields an empty, well-defined result.
func TableData(orders []order.Order, cfg widget.Config, page int) TableResult {
	if len(cfg.Columns) == 0 {
		return TableResult{Columns: []string{}, Rows: [][]string{}, CurrentPage: 1}
	}

	rows := orders
	if cfg.ApplyFilter && len(cfg.Filters) > 0 {
		rows = applyFilters(rows, cfg.Filters)
	}

	rows = sortRows(rows, cfg.SortBy)

	pageSize := cfg.Pagination
	if pageSize <= 0 {
		pageSize = 10
	}

	totalRows := len(rows)
	totalPages := totalRows / pageSize
	if totalRows%pageSize != 0 {
		totalPages++
	}

	if page < 1 {
		page = 1
	}
	// The current page resets when filter or sort changes shrink the page count
	if page > totalPages && totalPages > 0 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalRows {
		start = totalRows
	}
	if end > totalRows {
		end = totalRows
	}

	projected := make([][]string, 0, end-start)
	for _, o := range rows[start:end] {
		cells := make([]string, len(cfg.Columns))
		for i, col := range cfg.Columns {
			cells[i] = CellValue(o, col)
		}
		projected = append(projected, cells)
	}

	return TableResult{
		Columns:     cfg.Columns,
		Rows:        projected,
		TotalRows:   totalRows,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

// applyFilters keeps the orders matching every complete filter clause.
// Incomplete clauses (missing attribute, operator or value) pass everything.
func applyFilters(orders []order.Order, filters []widget.Filter) []order.Order {
	matched := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if matchesAll(o, filters) {
			matched = append(matched, o)
		}
	}
	return matched
}

func matchesAll(o order.Order, filters []widget.Filter) bool {
	for _, f := range filters {
		if f.Attribute == "" || f.Operator == "" || f.Value == "" {
			continue
		}
		if !matchesFilter(o, f) {
			return false
		}
	}
	return true
}

func matchesFilter(o order.Order, f widget.Filter) bool {
	cell := strings.ToLower(CellValue(o, f.Attribute))
	filterStr := strings.ToLower(f.Value)

	switch f.Operator {
	case widget.OpEquals:
		return cell == filterStr
	case widget.OpNotEquals:
		return cell != filterStr
	case widget.OpContains:
		return strings.Contains(cell, filterStr)
	case widget.OpGreater, widget.OpGreaterOrEq, widget.OpLess, widget.OpLessOrEq:
		left := NumericValue(o, f.Attribute)
		right, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
		if err != nil {
			right = 0
		}
		switch f.Operator {
		case widget.OpGreater:
			return left > right
		case widget.OpGreaterOrEq:
			return left >= right
		case widget.OpLess:
			return left < right
		default:
			return left <= right
		}
	default:
		return true
	}
}

// sortRows orders by the record's allocation identity (the numeric orderId
// suffix) or chronologically by effective date. No sortBy keeps the input order.
func sortRows(orders []order.Order, sortBy string) []order.Order {
	if sortBy == "" {
		return orders
	}

	sorted := make([]order.Order, len(orders))
	copy(sorted, orders)

	switch sortBy {
	case "Ascending":
		sort.SliceStable(sorted, func(i, j int) bool {
			return orderSeq(sorted[i]) < orderSeq(sorted[j])
		})
	case "Descending":
		sort.SliceStable(sorted, func(i, j int) bool {
			return orderSeq(sorted[i]) > orderSeq(sorted[j])
		})
	case widget.FieldOrderDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return effectiveDate(sorted[i]).Before(effectiveDate(sorted[j]))
		})
	}
	return sorted
}

func orderSeq(o order.Order) int {
	i := strings.LastIndex(o.OrderID, "-")
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(o.OrderID[i+1:])
	if err != nil {
		return 0
	}
	return n
}
