package widget

import "strings"

// Validate checks a widget before it may be saved from the configuration panel.
// It returns per-field error messages keyed by field name; an empty map means
// the widget is valid. Validation never mutates the widget.
func Validate(w Widget) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(w.Title) == "" {
		errs["title"] = "Widget title is required"
	}
	if w.Width < 1 || w.Height < 1 {
		errs["size"] = "Widget width and height must be at least 1"
	}

	switch w.Type {
	case TypeKPI:
		if w.Config.Metric == "" {
			errs["metric"] = "Please select a metric"
		}
		if IsNumericField(w.Config.Metric) && w.Config.Aggregation == "" {
			errs["aggregation"] = "Please select an aggregation"
		}
		if w.Config.DataFormat == "" {
			errs["dataFormat"] = "Please select a data format"
		}

	case TypeBar, TypeLine, TypeArea, TypeScatter:
		if w.Config.XAxis == "" {
			errs["xAxis"] = "Please select X-Axis data"
		}
		if w.Config.YAxis == "" {
			errs["yAxis"] = "Please select Y-Axis data"
		}

	case TypePie:
		if w.Config.ChartData == "" {
			errs["chartData"] = "Please select chart data"
		}

	case TypeTable:
		if len(w.Config.Columns) == 0 {
			errs["columns"] = "Please select at least one column"
		} else {
			// Filter attributes must come from the selected columns
			for _, f := range w.Config.Filters {
				if f.Attribute == "" {
					continue
				}
				if !contains(w.Config.Columns, f.Attribute) {
					errs["filters"] = "Filter attribute '" + f.Attribute + "' is not a selected column"
					break
				}
			}
		}

	default:
		errs["type"] = "Unknown widget type '" + w.Type + "'"
	}

	return errs
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
