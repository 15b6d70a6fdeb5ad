package services

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF renders the finished quotation into a PDF using
// maroto/v2. The document is fully laid out before any bytes are
// returned, so the handed-off payload always reflects the complete
// quotation snapshot.
func GenerateQuotationPDF(data QuotationExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, data)
	addQuotationTitle(m, data)
	addQuotationItemsTable(m, data)
	addQuotationTotals(m, data)
	addQuotationExemptRows(m, data)
	addQuotationFinalAmount(m, data)
	addQuotationTerms(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuotationHeader adds the issuer block: company name, address lines,
// contact numbers, and the document date.
func addQuotationHeader(m core.Maroto, data QuotationExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(data.CompanyName, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	addressStyle := props.Text{
		Size:  8,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	for _, line := range data.AddressLines {
		m.AddRows(row.New(5).Add(col.New(12).Add(text.New(line, addressStyle))))
	}

	if len(data.ContactNumbers) > 0 {
		contact := "Contact: " + joinNonEmpty(data.ContactNumbers, ", ")
		m.AddRows(row.New(5).Add(col.New(12).Add(text.New(contact, addressStyle))))
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Date: %s", data.Date), props.Text{
					Size:  8,
					Align: align.Right,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addQuotationTitle adds the quotation title and, when present, the
// customer line.
func addQuotationTitle(m core.Maroto, data QuotationExportData) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	if data.CustomerName != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("Prepared for: %s", data.CustomerName), props.Text{
						Size:  9,
						Align: align.Center,
						Color: &props.Color{Red: 100, Green: 100, Blue: 100},
					}),
				),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addQuotationItemsTable adds the header row plus the catalog and
// discount-eligible extra rows. Exempt extras are rendered separately
// after the totals block.
func addQuotationItemsTable(m core.Maroto, data QuotationExportData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("S.No", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Name", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Price", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)

	for i, item := range data.Quotation.Items {
		if item.Origin == OriginExemptExtra {
			continue
		}
		m.AddRows(quotationItemRow(item, i%2 == 1))
	}

	m.AddRows(row.New(2))
}

// quotationItemRow builds one table body row, with an alternating
// background on odd rows.
func quotationItemRow(item LineItem, alt bool) core.Row {
	bodyText := props.Text{Size: 7, Align: align.Center}
	bodyTextLeft := props.Text{Size: 7, Align: align.Left}
	bodyTextRight := props.Text{Size: 7, Align: align.Right}

	var cellStyle *props.Cell
	if alt {
		cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 248, Green: 249, Blue: 250}}
	}

	cols := []core.Col{
		col.New(1).Add(text.New(strconv.Itoa(item.SNo), bodyText)),
		col.New(3).Add(text.New(item.Name, bodyTextLeft)),
		col.New(3).Add(text.New(item.Description, bodyTextLeft)),
		col.New(2).Add(text.New(FormatINR(item.UnitPrice), bodyTextRight)),
		col.New(1).Add(text.New(strconv.Itoa(item.Qty), bodyText)),
		col.New(2).Add(text.New(FormatINR(item.Total), bodyTextRight)),
	}
	if cellStyle != nil {
		for i := range cols {
			cols[i] = cols[i].WithStyle(cellStyle)
		}
	}

	return row.New(7).Add(cols...)
}

// addQuotationTotals adds the subtotal / discount / after-discount block.
func addQuotationTotals(m core.Maroto, data QuotationExportData) {
	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 8, Align: align.Right}

	q := data.Quotation

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("All Products Subtotal", labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatINR(q.ProductsSubtotal), valueStyle)).WithStyle(summaryCell),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New(fmt.Sprintf("Discount (%g%%)", q.DiscountPercent), labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New("-"+FormatINR(q.DiscountAmount), valueStyle)).WithStyle(summaryCell),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Subtotal After Discount", labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatINR(q.ProductsSubtotal-q.DiscountAmount), valueStyle)).WithStyle(summaryCell),
		),
	)

	m.AddRows(row.New(2))
}

// addQuotationExemptRows appends the discount-exempt extras after the
// discount block, continuing the sequence numbering.
func addQuotationExemptRows(m core.Maroto, data QuotationExportData) {
	added := false
	for i, item := range data.Quotation.Items {
		if item.Origin != OriginExemptExtra {
			continue
		}
		m.AddRows(quotationItemRow(item, i%2 == 1))
		added = true
	}
	if added {
		m.AddRows(row.New(2))
	}
}

// addQuotationFinalAmount adds the grand total and the amount in words.
func addQuotationFinalAmount(m core.Maroto, data QuotationExportData) {
	grandCell := &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Final Amount", props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: white,
			})).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatINR(data.Quotation.FinalTotal), props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: white,
			})).WithStyle(grandCell),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: %s", data.AmountInWords), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addQuotationTerms adds the terms and conditions footer.
func addQuotationTerms(m core.Maroto) {
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("TERMS & CONDITIONS", props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: &props.Color{Red: 33, Green: 37, Blue: 41},
			})),
		),
	)

	for _, term := range QuotationTerms {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New("- "+term, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				})),
			),
		)
	}
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	result := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if result != "" {
			result += sep
		}
		result += p
	}
	return result
}
