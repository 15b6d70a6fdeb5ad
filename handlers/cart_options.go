package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotationcreation/cart"
	"quotationcreation/services"
	"quotationcreation/templates"
)

// HandleCartOptions returns a handler that saves the adjustments form:
// discount input, quotation title, customer name, and the extras. Inputs
// are stored as entered; validation happens when the quotation is built.
func HandleCartOptions() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := GetSession(e.Request)
		if sess == nil {
			log.Printf("cart_options: no session on request")
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		extras := make(map[string]cart.ExtraState, len(services.ExtraDefs))
		for _, def := range services.ExtraDefs {
			extras[def.Slug] = cart.ExtraState{
				Included:   e.Request.FormValue("extra_"+def.Slug+"_included") != "",
				PriceInput: e.Request.FormValue("extra_" + def.Slug + "_price"),
			}
		}

		sess.SetOptions(
			e.Request.FormValue("discount"),
			e.Request.FormValue("title"),
			e.Request.FormValue("customer"),
			extras,
		)

		SetToast(e, "success", "Quotation updated")
		return templates.CartPage(buildCartPageData(sess.Snapshot())).
			Render(e.Request.Context(), e.Response)
	}
}
