package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"quotationcreation/config"
	"quotationcreation/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// quotationFilename derives the download name from the customer name.
func quotationFilename(customer, ext string) string {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return "quotation." + ext
	}
	return fmt.Sprintf("%s-quotation.%s", sanitizeFilename(customer), ext)
}

// exportSnapshot waits out the settle delay so a counter click racing
// the download still lands, then returns the export payload. The bool
// reports whether there is anything to export.
func exportSnapshot(e *core.RequestEvent, cfg config.Config) (services.QuotationExportData, bool) {
	sess := GetSession(e.Request)
	if sess == nil {
		log.Printf("export: no session on request")
		return services.QuotationExportData{}, false
	}

	if cfg.Export.SettleDelayMs > 0 {
		time.Sleep(time.Duration(cfg.Export.SettleDelayMs) * time.Millisecond)
	}

	snap := sess.Snapshot()
	q := services.BuildQuotation(snap)
	if q.Empty() {
		return services.QuotationExportData{}, false
	}

	data := services.BuildQuotationExportData(q, snap.Title, snap.Customer, cfg.Issuer, cfg.Export.DefaultTitle)
	return data, true
}

// HandleQuotationExportPDF returns a handler that generates and downloads
// the quotation as a PDF.
func HandleQuotationExportPDF(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, ok := exportSnapshot(e, cfg)
		if !ok {
			SetToast(e, "error", "Nothing to export: the quotation is empty")
			return e.Redirect(http.StatusFound, "/cart")
		}

		pdfBytes, err := services.GenerateQuotationPDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := quotationFilename(data.CustomerName, "pdf")

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuotationExportExcel returns a handler that generates and
// downloads the quotation as an Excel workbook.
func HandleQuotationExportExcel(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, ok := exportSnapshot(e, cfg)
		if !ok {
			SetToast(e, "error", "Nothing to export: the quotation is empty")
			return e.Redirect(http.StatusFound, "/cart")
		}

		xlsxBytes, err := services.GenerateQuotationExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := quotationFilename(data.CustomerName, "xlsx")

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
