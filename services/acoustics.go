package services

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotoconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"quotationcreation/config"
)

// AcousticsSelection holds the raw inputs for one acoustics surface:
// the checkbox state, the square-feet input, and the per-sft price.
type AcousticsSelection struct {
	Checked    bool
	SftInput   string
	PriceInput string
}

// AcousticsInput is the full acoustics form: one selection per surface.
type AcousticsInput struct {
	Wall     AcousticsSelection
	Ceiling  AcousticsSelection
	Flooring AcousticsSelection
}

// AcousticsRow is one computed acoustics line: total = sft * price.
type AcousticsRow struct {
	SNo   int
	Name  string
	Sft   float64
	Price float64
	Total float64
}

// AcousticsQuotation is the computed acoustics document content.
type AcousticsQuotation struct {
	Rows       []AcousticsRow
	FinalTotal float64
}

// Empty reports that no surface produced a valid row.
func (a AcousticsQuotation) Empty() bool {
	return len(a.Rows) == 0
}

// Materials printed at the bottom of the acoustics document.
var AcousticsMaterials = []string{
	"19 MM plywood (Oswin, green ply, Sharon etc., as per customer requirement)",
	"12 MM plywood",
	"8 MM plywood",
	"8 MM HDHMR Boards",
	"2*1 Aluminium Channels",
	"1000 GSM Recron",
	"18 MM Wood Wool Sheets",
	"Grippers",
	"Foam, Cloth, Sunmica, Door Handles, Door Hinges, Door Locks, Door Closure",
}

// BuildAcousticsQuotation computes the acoustics rows. Unchecked
// surfaces and rows with unparsable or non-positive sft/price inputs
// are excluded rather than failing the computation.
func BuildAcousticsQuotation(in AcousticsInput) AcousticsQuotation {
	var q AcousticsQuotation

	surfaces := []struct {
		name string
		sel  AcousticsSelection
	}{
		{"Wall Acoustics", in.Wall},
		{"Ceiling Acoustics", in.Ceiling},
		{"Flooring Acoustics", in.Flooring},
	}
	for _, s := range surfaces {
		if !s.sel.Checked {
			continue
		}
		sft, okSft := parseExtraPrice(s.sel.SftInput)
		price, okPrice := parseExtraPrice(s.sel.PriceInput)
		if !okSft || !okPrice || sft <= 0 || price <= 0 {
			continue
		}
		total := sft * price
		q.Rows = append(q.Rows, AcousticsRow{
			SNo:   len(q.Rows) + 1,
			Name:  s.name,
			Sft:   sft,
			Price: price,
			Total: total,
		})
		q.FinalTotal += total
	}
	return q
}

// AcousticsExportData holds the acoustics quotation plus presentation
// metadata for PDF rendering.
type AcousticsExportData struct {
	CompanyName    string
	AddressLines   []string
	ContactNumbers []string
	Date           string
	Quotation      AcousticsQuotation
}

// BuildAcousticsExportData assembles the acoustics export payload.
func BuildAcousticsExportData(q AcousticsQuotation, issuer config.Issuer) AcousticsExportData {
	return AcousticsExportData{
		CompanyName:    issuer.CompanyName,
		AddressLines:   issuer.AddressLines,
		ContactNumbers: issuer.ContactNumbers,
		Date:           time.Now().Format("02 January 2006"),
		Quotation:      q,
	}
}

// GenerateAcousticsPDF renders the acoustics quotation into a PDF.
func GenerateAcousticsPDF(data AcousticsExportData) ([]byte, error) {
	cfg := marotoconfig.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, QuotationExportData{
		CompanyName:    data.CompanyName,
		AddressLines:   data.AddressLines,
		ContactNumbers: data.ContactNumbers,
		Date:           data.Date,
	})

	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New("Acoustics Quotation", props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
	m.AddRows(row.New(2))

	addAcousticsTable(m, data.Quotation)
	addAcousticsMaterials(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate acoustics PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addAcousticsTable(m core.Maroto, q AcousticsQuotation) {
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("S.No", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Description", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("SFT", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Price", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Total Price", headerText)).WithStyle(&headerCell),
		),
	)

	bodyText := props.Text{Size: 7, Align: align.Center}
	bodyTextRight := props.Text{Size: 7, Align: align.Right}
	for _, r := range q.Rows {
		m.AddRows(
			row.New(7).Add(
				col.New(1).Add(text.New(fmt.Sprintf("%d", r.SNo), bodyText)),
				col.New(4).Add(text.New(r.Name, bodyText)),
				col.New(2).Add(text.New(fmt.Sprintf("%g", r.Sft), bodyTextRight)),
				col.New(2).Add(text.New(FormatINR(r.Price), bodyTextRight)),
				col.New(3).Add(text.New(FormatINR(r.Total), bodyTextRight)),
			),
		)
	}

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
			col.New(3).Add(text.New(FormatINR(q.FinalTotal), props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: white,
			})).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

func addAcousticsMaterials(m core.Maroto) {
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Materials Using:", props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: &props.Color{Red: 33, Green: 37, Blue: 41},
			})),
		),
	)

	itemStyle := props.Text{
		Size:  8,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	for _, material := range AcousticsMaterials {
		m.AddRows(row.New(5).Add(col.New(12).Add(text.New("- "+material, itemStyle))))
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(text.New(
				"*The above materials ensure maximum acoustic performance and premium finish.*",
				props.Text{Size: 7, Style: fontstyle.Italic, Align: align.Left,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120}},
			)),
		),
	)
}
