package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"quotationcreation/cart"
)

// ProductListData feeds the category product list fragment.
type ProductListData struct {
	Category   string
	Products   []cart.Product
	Quantities map[cart.Key]int
}

// CatalogPage renders the landing page: one button per category that
// swaps the product list fragment in place.
func CatalogPage(categories []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h2>Create Quotation</h2><div class="category-buttons">`); err != nil {
			return err
		}
		for _, c := range categories {
			if _, err := fmt.Fprintf(w,
				`<button class="category" hx-get="/catalog/%s" hx-target="#product-list">%s</button>`,
				url.PathEscape(c), esc(c)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div><div id="product-list"></div>`)
		return err
	})
}

// ProductList renders the products of one category. Carted products
// show a +/- counter instead of the add button.
func ProductList(data ProductListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="product-details"><h2>Products in %s</h2>`, esc(data.Category)); err != nil {
			return err
		}
		for _, p := range data.Products {
			qty := data.Quantities[cart.CompositeKey(p, data.Category)]
			if err := productCard(w, p, data.Category, qty); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func productCard(w io.Writer, p cart.Product, category string, qty int) error {
	base := fmt.Sprintf("/cart/%s/%s", url.PathEscape(category), url.PathEscape(p.ID))

	if _, err := fmt.Fprintf(w, `<div class="product-card" id="product-%s"><h3>%s</h3><p class="price">%s</p>`,
		esc(p.ID), esc(p.Name), esc(formatPrice(p.Price))); err != nil {
		return err
	}
	if qty > 0 {
		if _, err := fmt.Fprintf(w,
			`<div class="counter">`+
				`<button hx-post="%s/decrement" hx-target="#product-%s" hx-swap="outerHTML">-</button>`+
				`<span>%d</span>`+
				`<button hx-post="%s/increment" hx-target="#product-%s" hx-swap="outerHTML">+</button>`+
				`</div>`,
			base, esc(p.ID), qty, base, esc(p.ID)); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w,
			`<button class="add-btn" hx-post="%s" hx-target="#product-%s" hx-swap="outerHTML">Add to Cart</button>`,
			base, esc(p.ID)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

// ProductCard renders a single product card, used as the swap target
// for cart mutations triggered from the catalog view.
func ProductCard(p cart.Product, category string, qty int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return productCard(w, p, category, qty)
	})
}
