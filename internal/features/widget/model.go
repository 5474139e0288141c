package widget

// Widget types
const (
	TypeBar     = "bar"
	TypeLine    = "line"
	TypePie     = "pie"
	TypeArea    = "area"
	TypeScatter = "scatter"
	TypeTable   = "table"
	TypeKPI     = "kpi"
)

// Table filter operators
const (
	OpEquals      = "="
	OpNotEquals   = "≠"
	OpGreater     = ">"
	OpGreaterOrEq = ">="
	OpLess        = "<"
	OpLessOrEq    = "<="
	OpContains    = "contains"
)

// Filter is one table filter clause. Clauses combine with logical AND;
// a clause with a missing attribute, operator or value is a pass-through.
type Filter struct {
	Attribute string `json:"attribute" bson:"attribute"`
	Operator  string `json:"operator" bson:"operator"`
	Value     string `json:"value" bson:"value"`
}

// Config carries the type-dependent widget settings. Only the fields for the
// widget's own type are meaningful; Validate enforces the per-type required set.
type Config struct {
	// kpi
	Metric           string `json:"metric,omitempty" bson:"metric,omitempty"`
	Aggregation      string `json:"aggregation,omitempty" bson:"aggregation,omitempty"`
	DataFormat       string `json:"dataFormat,omitempty" bson:"dataFormat,omitempty"`
	DecimalPrecision int    `json:"decimalPrecision,omitempty" bson:"decimalPrecision,omitempty"`

	// bar / line / area / scatter
	XAxis         string `json:"xAxis,omitempty" bson:"xAxis,omitempty"`
	YAxis         string `json:"yAxis,omitempty" bson:"yAxis,omitempty"`
	ShowDataLabel bool   `json:"showDataLabel,omitempty" bson:"showDataLabel,omitempty"`
	ChartColor    string `json:"chartColor,omitempty" bson:"chartColor,omitempty"`

	// pie
	ChartData  string `json:"chartData,omitempty" bson:"chartData,omitempty"`
	ShowLegend *bool  `json:"showLegend,omitempty" bson:"showLegend,omitempty"`

	// table
	Columns     []string `json:"columns,omitempty" bson:"columns,omitempty"`
	SortBy      string   `json:"sortBy,omitempty" bson:"sortBy,omitempty"`
	Pagination  int      `json:"pagination,omitempty" bson:"pagination,omitempty"`
	FontSize    int      `json:"fontSize,omitempty" bson:"fontSize,omitempty"`
	HeaderBg    string   `json:"headerBg,omitempty" bson:"headerBg,omitempty"`
	ApplyFilter bool     `json:"applyFilter,omitempty" bson:"applyFilter,omitempty"`
	Filters     []Filter `json:"filters,omitempty" bson:"filters,omitempty"`
}

// LegendVisible reports the pie legend setting, defaulting to true when unset.
func (c Config) LegendVisible() bool {
	return c.ShowLegend == nil || *c.ShowLegend
}

// Widget is one visual element in a dashboard configuration.
// The id is client-generated (timestamp based) and unique within a configuration.
type Widget struct {
	ID          int64  `json:"id" bson:"id"`
	Type        string `json:"type" bson:"type"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Width       int    `json:"width" bson:"width"`
	Height      int    `json:"height" bson:"height"`
	Config      Config `json:"config" bson:"config"`
}

// Dimensions are grid-span units assigned when a widget is dropped on the canvas.
type Dimensions struct {
	Width  int
	Height int
}

var DefaultDimensions = map[string]Dimensions{
	TypeKPI:     {Width: 2, Height: 2},
	TypePie:     {Width: 4, Height: 4},
	TypeBar:     {Width: 5, Height: 5},
	TypeLine:    {Width: 5, Height: 5},
	TypeArea:    {Width: 5, Height: 5},
	TypeScatter: {Width: 5, Height: 5},
	TypeTable:   {Width: 4, Height: 4},
}

// New creates a widget with the type-default dimensions and an empty config.
func New(id int64, widgetType string) Widget {
	dims, ok := DefaultDimensions[widgetType]
	if !ok {
		dims = Dimensions{Width: 2, Height: 2}
	}
	return Widget{
		ID:     id,
		Type:   widgetType,
		Title:  "Untitled",
		Width:  dims.Width,
		Height: dims.Height,
	}
}

// IsChartType reports whether the widget type renders as an axis chart.
func IsChartType(widgetType string) bool {
	switch widgetType {
	case TypeBar, TypeLine, TypeArea, TypeScatter:
		return true
	}
	return false
}
