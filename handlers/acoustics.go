package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"quotationcreation/config"
	"quotationcreation/services"
	"quotationcreation/templates"
)

// HandleAcousticsPage returns a handler that renders the acoustics form.
func HandleAcousticsPage() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.AcousticsPage()
		} else {
			component = templates.Layout("Create Acoustics", templates.AcousticsPage())
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleAcousticsExport returns a handler that computes the acoustics
// quotation from the submitted form and downloads it as a PDF.
func HandleAcousticsExport(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		selection := func(prefix string) services.AcousticsSelection {
			return services.AcousticsSelection{
				Checked:    e.Request.FormValue(prefix+"_checked") != "",
				SftInput:   e.Request.FormValue(prefix + "_sft"),
				PriceInput: e.Request.FormValue(prefix + "_price"),
			}
		}
		input := services.AcousticsInput{
			Wall:     selection("wall"),
			Ceiling:  selection("ceiling"),
			Flooring: selection("flooring"),
		}

		q := services.BuildAcousticsQuotation(input)
		if q.Empty() {
			SetToast(e, "error", "Nothing to export: no valid acoustics selections")
			return e.Redirect(http.StatusFound, "/acoustics")
		}

		pdfBytes, err := services.GenerateAcousticsPDF(services.BuildAcousticsExportData(q, cfg.Issuer))
		if err != nil {
			log.Printf("acoustics_export: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="acoustics-quotation.pdf"`)
		e.Response.Write(pdfBytes)
		return nil
	}
}
