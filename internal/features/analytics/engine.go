package analytics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go-orderboard/internal/features/order"
	"go-orderboard/internal/features/widget"
)

// SeriesPoint is one category on a bar/line/area/scatter chart. Breakdown is
// set for non-numeric Y axes and lists the per-value counts inside the group.
type SeriesPoint struct {
	Category  string  `json:"category"`
	Value     float64 `json:"value"`
	Breakdown string  `json:"breakdown,omitempty"`
}

// Slice is one pie chart segment.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// KPIValue reduces the orders to the widget's metric scalar. Non-numeric
// metrics always reduce to the row count; an unset metric yields 0.
func KPIValue(orders []order.Order, cfg widget.Config) float64 {
	if cfg.Metric == "" {
		return 0
	}

	if !widget.IsNumericField(cfg.Metric) {
		return float64(len(orders))
	}

	var sum float64
	for _, o := range orders {
		sum += NumericValue(o, cfg.Metric)
	}

	switch cfg.Aggregation {
	case "Sum":
		return sum
	case "Average":
		if len(orders) == 0 {
			return 0
		}
		return sum / float64(len(orders))
	case "Count":
		return float64(len(orders))
	default:
		return sum
	}
}

// FormatKPI renders the scalar with the configured precision; Currency
// prepends a dollar sign.
func FormatKPI(value float64, cfg widget.Config) string {
	precision := cfg.DecimalPrecision
	if precision < 0 {
		precision = 0
	}
	formatted := strconv.FormatFloat(value, 'f', precision, 64)
	if cfg.DataFormat == "Currency" {
		return "$" + formatted
	}
	return formatted
}

// ChartSeries groups orders by the X-axis value, ordered by first occurrence.
// A numeric Y axis sums the field per group (rounded to 2 decimals); a
// non-numeric Y axis counts the group and carries a per-value breakdown like
// "3 (Pending: 2, Completed: 1)".
func ChartSeries(orders []order.Order, xAxis, yAxis string) []SeriesPoint {
	if xAxis == "" || yAxis == "" {
		return []SeriesPoint{}
	}

	type group struct {
		sum     float64
		count   int
		yCounts map[string]int
		yOrder  []string
	}

	groups := make(map[string]*group)
	keys := []string{}

	numericY := isAxisNumeric(yAxis)

	for _, o := range orders {
		key := stringValue(FieldValue(o, xAxis))

		g, ok := groups[key]
		if !ok {
			g = &group{yCounts: make(map[string]int)}
			groups[key] = g
			keys = append(keys, key)
		}

		if numericY {
			g.sum += NumericValue(o, yAxis)
		} else {
			yv := stringValue(FieldValue(o, yAxis))
			if _, seen := g.yCounts[yv]; !seen {
				g.yOrder = append(g.yOrder, yv)
			}
			g.yCounts[yv]++
		}
		g.count++
	}

	points := make([]SeriesPoint, 0, len(keys))
	for _, key := range keys {
		g := groups[key]

		if numericY {
			points = append(points, SeriesPoint{
				Category: key,
				Value:    round2(g.sum),
			})
			continue
		}

		parts := make([]string, 0, len(g.yOrder))
		for _, yv := range g.yOrder {
			parts = append(parts, fmt.Sprintf("%s: %d", yv, g.yCounts[yv]))
		}
		points = append(points, SeriesPoint{
			Category:  key,
			Value:     float64(g.count),
			Breakdown: fmt.Sprintf("%d (%s)", g.count, strings.Join(parts, ", ")),
		})
	}
	return points
}

// PieSlices groups orders by the chartData field; numeric fields sum, others
// count. An unconfigured widget (or one with nothing to group) renders four
// equal placeholder slices.
func PieSlices(orders []order.Order, chartData string) []Slice {
	if chartData == "" {
		return placeholderSlices()
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	keys := []string{}

	for _, o := range orders {
		key := stringValue(FieldValue(o, chartData))
		if _, ok := counts[key]; !ok {
			keys = append(keys, key)
		}
		counts[key]++
		sums[key] += NumericValue(o, chartData)
	}

	if len(keys) == 0 {
		return placeholderSlices()
	}

	numeric := widget.IsNumericField(chartData)

	slices := make([]Slice, 0, len(keys))
	for _, key := range keys {
		value := float64(counts[key])
		if numeric {
			value = sums[key]
		}
		slices = append(slices, Slice{Label: key, Value: round2(value)})
	}
	return slices
}

func placeholderSlices() []Slice {
	return []Slice{
		{Label: "Category 1", Value: 1},
		{Label: "Category 2", Value: 1},
		{Label: "Category 3", Value: 1},
		{Label: "Category 4", Value: 1},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
