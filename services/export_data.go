package services

import (
	"strings"
	"time"

	"quotationcreation/config"
)

// QuotationExportData holds everything the document exporters need to
// render a finished quotation: the computed snapshot plus presentation
// metadata.
type QuotationExportData struct {
	CompanyName    string
	AddressLines   []string
	ContactNumbers []string

	Title        string
	CustomerName string
	Date         string

	Quotation     Quotation
	AmountInWords string
}

// Terms printed at the bottom of every quotation document.
var QuotationTerms = []string{
	"50% Advance at the time of confirmation.",
	"Quotation validity: 15 days.",
	"Prices subject to change based on availability.",
}

// BuildQuotationExportData assembles the export payload for a computed
// quotation. A blank title falls back to the configured default.
func BuildQuotationExportData(q Quotation, title, customer string, issuer config.Issuer, defaultTitle string) QuotationExportData {
	if strings.TrimSpace(title) == "" {
		title = defaultTitle
	}
	return QuotationExportData{
		CompanyName:    issuer.CompanyName,
		AddressLines:   issuer.AddressLines,
		ContactNumbers: issuer.ContactNumbers,
		Title:          title,
		CustomerName:   strings.TrimSpace(customer),
		Date:           time.Now().Format("02 January 2006"),
		Quotation:      q,
		AmountInWords:  AmountToWords(q.FinalTotal),
	}
}
