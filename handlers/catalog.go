package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationcreation/cart"
	"quotationcreation/services"
	"quotationcreation/templates"
)

// HandleHome returns a handler that renders the landing page with the
// category buttons.
func HandleHome() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CatalogPage(services.Categories)
		} else {
			component = templates.Layout("Create Quotation", templates.CatalogPage(services.Categories))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCategoryProducts returns a handler that renders the product list
// fragment for one category. Fetched products are cached on the session
// so cart counters keep working if the category later fails to load.
func HandleCategoryProducts(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := e.Request.PathValue("category")
		if category == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing category")
		}

		sess := GetSession(e.Request)
		if sess == nil {
			log.Printf("catalog: no session on request")
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		products, err := services.FetchProductsByCategory(app, category)
		if err != nil {
			log.Printf("catalog: could not load products for %s: %v", category, err)
			SetToast(e, "error", fmt.Sprintf("Could not load %s products", category))
			return templates.ErrorFragment(fmt.Sprintf("Could not load %s products. Try another category.", category)).
				Render(e.Request.Context(), e.Response)
		}

		sess.CacheProducts(products, category)

		snap := sess.Snapshot()
		quantities := make(map[cart.Key]int, len(products))
		for _, p := range products {
			k := cart.CompositeKey(p, category)
			quantities[k] = snap.Cart.Quantity(k)
		}

		return templates.ProductList(templates.ProductListData{
			Category:   category,
			Products:   products,
			Quantities: quantities,
		}).Render(e.Request.Context(), e.Response)
	}
}
