package widget

// Logical order fields available to widgets
const (
	FieldCustomerID   = "Customer ID"
	FieldCustomerName = "Customer name"
	FieldEmail        = "Email id"
	FieldPhoneNumber  = "Phone number"
	FieldAddress      = "Address"
	FieldOrderID      = "Order ID"
	FieldOrderDate    = "Order date"
	FieldProduct      = "Product"
	FieldQuantity     = "Quantity"
	FieldUnitPrice    = "Unit price"
	FieldTotalAmount  = "Total amount"
	FieldStatus       = "Status"
	FieldCreatedBy    = "Created by"
	FieldDuration     = "Duration"
)

// DataFields are selectable for KPI metrics and pie chart data.
var DataFields = []string{
	FieldCustomerID,
	FieldCustomerName,
	FieldEmail,
	FieldAddress,
	FieldOrderDate,
	FieldProduct,
	FieldCreatedBy,
	FieldStatus,
	FieldTotalAmount,
	FieldUnitPrice,
	FieldQuantity,
}

// NumericFields support Sum/Average aggregation.
var NumericFields = []string{FieldTotalAmount, FieldUnitPrice, FieldQuantity}

// ChartAxisFields are selectable for chart X/Y axes.
var ChartAxisFields = []string{
	FieldProduct,
	FieldQuantity,
	FieldUnitPrice,
	FieldTotalAmount,
	FieldStatus,
	FieldCreatedBy,
	FieldDuration,
}

// TableColumns are selectable for table widgets.
var TableColumns = []string{
	FieldCustomerID,
	FieldCustomerName,
	FieldEmail,
	FieldPhoneNumber,
	FieldAddress,
	FieldOrderID,
	FieldOrderDate,
	FieldProduct,
	FieldQuantity,
	FieldUnitPrice,
	FieldTotalAmount,
	FieldStatus,
	FieldCreatedBy,
}

var AggregationTypes = []string{"Sum", "Average", "Count"}

var DataFormats = []string{"Number", "Currency"}

var SortOptions = []string{"Ascending", "Descending", FieldOrderDate}

var PaginationOptions = []int{5, 10, 15}

const (
	FontSizeMin     = 12
	FontSizeMax     = 20
	FontSizeDefault = 14
)

// IsNumericField reports whether the logical field aggregates as a number.
func IsNumericField(field string) bool {
	for _, f := range NumericFields {
		if f == field {
			return true
		}
	}
	return false
}
