package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationcreation/cart"
	"quotationcreation/services"
	"quotationcreation/templates"
)

// cartAction performs one cart mutation against the session after
// resolving the product record, then renders the right fragment for the
// element that triggered the request.
func cartAction(app *pocketbase.PocketBase, mutate func(sess *cart.Session, p cart.Product, category string)) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := e.Request.PathValue("category")
		productID := e.Request.PathValue("productId")
		if category == "" || productID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing product reference")
		}

		sess := GetSession(e.Request)
		if sess == nil {
			log.Printf("cart: no session on request")
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		p, err := services.FindProduct(app, productID, category)
		if err != nil {
			log.Printf("cart: product %s not found in %s: %v", productID, category, err)
			return ErrorToast(e, http.StatusNotFound, "Product not found")
		}

		mutate(sess, p, category)

		return renderCartMutation(e, sess, p, category)
	}
}

// renderCartMutation picks the response fragment based on the HTMX
// target: product cards swap in place on the catalog view, everything
// else re-renders the cart page.
func renderCartMutation(e *core.RequestEvent, sess *cart.Session, p cart.Product, category string) error {
	snap := sess.Snapshot()

	if strings.HasPrefix(e.Request.Header.Get("HX-Target"), "product-") {
		qty := snap.Cart.Quantity(cart.CompositeKey(p, category))
		return templates.ProductCard(p, category, qty).Render(e.Request.Context(), e.Response)
	}
	return templates.CartPage(buildCartPageData(snap)).Render(e.Request.Context(), e.Response)
}

// HandleCartAdd returns a handler that adds a product to the cart.
func HandleCartAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return cartAction(app, func(sess *cart.Session, p cart.Product, category string) {
		sess.AddProduct(p, category)
	})
}

// HandleCartIncrement returns a handler that bumps a cart quantity.
func HandleCartIncrement(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return cartAction(app, func(sess *cart.Session, p cart.Product, category string) {
		sess.IncrementProduct(p, category)
	})
}

// HandleCartDecrement returns a handler that lowers a cart quantity,
// dropping the line when it reaches zero.
func HandleCartDecrement(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return cartAction(app, func(sess *cart.Session, p cart.Product, category string) {
		sess.DecrementProduct(p, category)
	})
}
