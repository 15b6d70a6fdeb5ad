package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"quotationcreation/cart"
	"quotationcreation/services"
	"quotationcreation/templates"
)

// buildCartPageData projects a session snapshot into the cart page view
// model, including the computed quotation preview.
func buildCartPageData(snap cart.Snapshot) templates.CartPageData {
	var items []templates.CartItemView
	for _, k := range snap.Cart.Keys() {
		p, ok := snap.Catalog.Lookup(k)
		if !ok {
			log.Printf("cart_view: no catalog entry for key %q, skipping", k)
			continue
		}
		items = append(items, templates.CartItemView{
			Name:      p.Name,
			Qty:       snap.Cart.Quantity(k),
			Category:  p.Category,
			ProductID: p.ID,
		})
	}

	extras := make([]templates.ExtraView, 0, len(services.ExtraDefs))
	for _, def := range services.ExtraDefs {
		extras = append(extras, templates.ExtraView{Def: def, State: snap.Extras[def.Slug]})
	}

	return templates.CartPageData{
		Items:         items,
		DiscountInput: snap.DiscountInput,
		Title:         snap.Title,
		Customer:      snap.Customer,
		Extras:        extras,
		Quotation:     services.BuildQuotation(snap),
	}
}

// HandleCartView returns a handler that renders the cart page.
func HandleCartView() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := GetSession(e.Request)
		if sess == nil {
			log.Printf("cart_view: no session on request")
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		data := buildCartPageData(sess.Snapshot())

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CartPage(data)
		} else {
			component = templates.Layout("Your Cart", templates.CartPage(data))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
