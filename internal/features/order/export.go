package order

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

var exportColumns = []string{
	"Order ID", "Customer ID", "First name", "Last name", "Email", "Phone number",
	"Street address", "City", "State", "Postal code", "Country",
	"Product", "Quantity", "Unit price", "Total amount", "Status", "Created by", "Created at",
}

// ExportXLSX renders all orders as a spreadsheet and returns the file bytes
// together with a dated filename.
func (s *OrderServiceImpl) ExportXLSX(ctx context.Context) ([]byte, string, error) {
	orders, err := s.OrderRepo.FindAll(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Orders"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, o := range orders {
		values := []interface{}{
			o.OrderID, o.CustomerID, o.FirstName, o.LastName, o.Email, o.PhoneNumber,
			o.StreetAddress, o.City, o.State, o.PostalCode, o.Country,
			o.Product, o.Quantity, o.UnitPrice, o.TotalAmount, o.Status, o.CreatedBy,
			o.CreatedAt.Format(time.RFC3339),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
