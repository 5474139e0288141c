package analytics

import (
	"time"

	"go-orderboard/internal/features/order"
)

// Date filter windows shared by all widgets on a dashboard.
const (
	FilterAllTime    = "all-time"
	FilterToday      = "today"
	FilterLast7Days  = "last-7-days"
	FilterLast30Days = "last-30-days"
	FilterLast90Days = "last-90-days"
)

// effectiveDate is the order's creation time, falling back to the last
// modification time. Used for date filtering and chronological sorting.
func effectiveDate(o order.Order) time.Time {
	if !o.CreatedAt.IsZero() {
		return o.CreatedAt
	}
	return o.UpdatedAt
}

// FilterByDate retains the orders whose effective date falls inside the
// window. An order with no usable date only passes under all-time; an unknown
// filter value behaves like all-time.
func FilterByDate(orders []order.Order, dateFilter string, now time.Time) []order.Order {
	if dateFilter == "" || dateFilter == FilterAllTime {
		return orders
	}

	filtered := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		d := effectiveDate(o)
		if d.IsZero() {
			continue
		}

		switch dateFilter {
		case FilterToday:
			y1, m1, d1 := d.Date()
			y2, m2, d2 := now.Date()
			if y1 == y2 && m1 == m2 && d1 == d2 {
				filtered = append(filtered, o)
			}
		case FilterLast7Days:
			if !d.Before(now.Add(-7 * 24 * time.Hour)) {
				filtered = append(filtered, o)
			}
		case FilterLast30Days:
			if !d.Before(now.Add(-30 * 24 * time.Hour)) {
				filtered = append(filtered, o)
			}
		case FilterLast90Days:
			if !d.Before(now.Add(-90 * 24 * time.Hour)) {
				filtered = append(filtered, o)
			}
		default:
			filtered = append(filtered, o)
		}
	}
	return filtered
}
