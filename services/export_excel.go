package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuotationExcel renders the finished quotation into an Excel
// workbook and returns the file contents.
func GenerateQuotationExcel(data QuotationExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Quotation"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	widths := []float64{6, 30, 50, 14, 8, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	rowNum := 1
	setRow := func(style int, values ...any) error {
		cell := fmt.Sprintf("A%d", rowNum)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("set row %d: %w", rowNum, err)
		}
		last := columns[len(values)-1]
		if err := f.SetCellStyle(sheetName, cell, fmt.Sprintf("%s%d", last, rowNum), style); err != nil {
			return fmt.Errorf("style row %d: %w", rowNum, err)
		}
		rowNum++
		return nil
	}

	// Issuer block and title.
	if err := setRow(titleStyle, data.CompanyName); err != nil {
		return nil, err
	}
	for _, line := range data.AddressLines {
		if err := setRow(subtitleStyle, line); err != nil {
			return nil, err
		}
	}
	if err := setRow(subtitleStyle, fmt.Sprintf("Date: %s", data.Date)); err != nil {
		return nil, err
	}
	rowNum++
	if err := setRow(titleStyle, data.Title); err != nil {
		return nil, err
	}
	if data.CustomerName != "" {
		if err := setRow(subtitleStyle, fmt.Sprintf("Prepared for: %s", data.CustomerName)); err != nil {
			return nil, err
		}
	}
	rowNum++

	// Items table: catalog and eligible rows first.
	if err := setRow(headerStyle, "S.No", "Name", "Description", "Price", "Qty", "Total"); err != nil {
		return nil, err
	}
	q := data.Quotation
	for _, item := range q.Items {
		if item.Origin == OriginExemptExtra {
			continue
		}
		if err := setRow(itemStyle, item.SNo, item.Name, item.Description, item.UnitPrice, item.Qty, item.Total); err != nil {
			return nil, err
		}
	}

	// Totals, then the exempt rows, then the final amount.
	if err := setRow(totalStyle, "", "", "", "All Products Subtotal", "", q.ProductsSubtotal); err != nil {
		return nil, err
	}
	if err := setRow(totalStyle, "", "", "", fmt.Sprintf("Discount (%g%%)", q.DiscountPercent), "", -q.DiscountAmount); err != nil {
		return nil, err
	}
	if err := setRow(totalStyle, "", "", "", "Subtotal After Discount", "", q.ProductsSubtotal-q.DiscountAmount); err != nil {
		return nil, err
	}
	for _, item := range q.Items {
		if item.Origin != OriginExemptExtra {
			continue
		}
		if err := setRow(itemStyle, item.SNo, item.Name, item.Description, item.UnitPrice, item.Qty, item.Total); err != nil {
			return nil, err
		}
	}
	if err := setRow(totalStyle, "", "", "", "Final Amount", "", q.FinalTotal); err != nil {
		return nil, err
	}
	rowNum++
	if err := setRow(subtitleStyle, fmt.Sprintf("Amount in Words: %s", data.AmountInWords)); err != nil {
		return nil, err
	}

	rowNum++
	if err := setRow(totalStyle, "Terms & Conditions"); err != nil {
		return nil, err
	}
	for _, term := range QuotationTerms {
		if err := setRow(subtitleStyle, term); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#CCCCCC", Style: 1},
		{Type: "right", Color: "#CCCCCC", Style: 1},
		{Type: "top", Color: "#CCCCCC", Style: 1},
		{Type: "bottom", Color: "#CCCCCC", Style: 1},
	}
}
