package analytics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-orderboard/internal/features/order"
	"go-orderboard/internal/features/widget"
)

// FieldValue extracts the raw value of a logical field from an order. Unknown
// field names fall back to a lowercased, space-stripped guess at the attribute.
func FieldValue(o order.Order, field string) interface{} {
	switch field {
	case widget.FieldProduct:
		return o.Product
	case widget.FieldQuantity:
		return float64(o.Quantity)
	case widget.FieldUnitPrice:
		return o.UnitPrice
	case widget.FieldTotalAmount:
		return o.TotalAmount
	case widget.FieldStatus:
		return o.Status
	case widget.FieldCreatedBy:
		return o.CreatedBy
	case widget.FieldDuration:
		// Orders carry no duration attribute
		return float64(0)
	}

	switch strings.ReplaceAll(strings.ToLower(field), " ", "") {
	case "customerid":
		return o.CustomerID
	case "customername":
		return strings.TrimSpace(o.FirstName + " " + o.LastName)
	case "emailid", "email":
		return o.Email
	case "phonenumber", "phone":
		return o.PhoneNumber
	case "address", "streetaddress":
		return o.StreetAddress
	case "orderid":
		return o.OrderID
	case "orderdate":
		return effectiveDate(o)
	}
	return float64(0)
}

// NumericValue extracts a field coerced to a number, defaulting to 0.
func NumericValue(o order.Order, field string) float64 {
	return coerceFloat(FieldValue(o, field))
}

func coerceFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func stringValue(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case time.Time:
		if s.IsZero() {
			return ""
		}
		return s.Format("1/2/2006")
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CellValue renders a table cell for the given column, "-" when empty.
func CellValue(o order.Order, column string) string {
	switch column {
	case widget.FieldCustomerID:
		return orDash(o.CustomerID)
	case widget.FieldCustomerName:
		return orDash(strings.TrimSpace(o.FirstName + " " + o.LastName))
	case widget.FieldEmail:
		return orDash(o.Email)
	case widget.FieldPhoneNumber:
		return orDash(o.PhoneNumber)
	case widget.FieldAddress:
		return orDash(o.StreetAddress)
	case widget.FieldOrderID:
		return orDash(o.OrderID)
	case widget.FieldOrderDate:
		d := effectiveDate(o)
		if d.IsZero() {
			return "-"
		}
		return d.Format("1/2/2006")
	case widget.FieldProduct:
		return orDash(o.Product)
	case widget.FieldQuantity:
		if o.Quantity == 0 {
			return "-"
		}
		return strconv.Itoa(o.Quantity)
	case widget.FieldUnitPrice:
		if o.UnitPrice == 0 {
			return "-"
		}
		return fmt.Sprintf("$%.2f", o.UnitPrice)
	case widget.FieldTotalAmount:
		if o.TotalAmount == 0 {
			return "-"
		}
		return fmt.Sprintf("$%.2f", o.TotalAmount)
	case widget.FieldStatus:
		return orDash(o.Status)
	case widget.FieldCreatedBy:
		return orDash(o.CreatedBy)
	default:
		return "-"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// isAxisNumeric mirrors the chart axis numeric set, which includes Duration.
func isAxisNumeric(field string) bool {
	return widget.IsNumericField(field) || field == widget.FieldDuration
}
