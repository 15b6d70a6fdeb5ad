package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"quotationcreation/cart"
	"quotationcreation/services"
)

func formatPrice(v float64) string {
	return services.FormatINR(v)
}

// CartItemView is one cart row with enough context to drive the
// counter buttons.
type CartItemView struct {
	Name      string
	Qty       int
	Category  string
	ProductID string
}

// ExtraView pairs an extra definition with its current input state.
type ExtraView struct {
	Def   services.ExtraDef
	State cart.ExtraState
}

// CartPageData feeds the cart page.
type CartPageData struct {
	Items         []CartItemView
	DiscountInput string
	Title         string
	Customer      string
	Extras        []ExtraView
	Quotation     services.Quotation
}

// CartPage renders the cart: item counters, the adjustments form, and
// either the quotation preview or the empty state.
func CartPage(data CartPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="cart-page"><h2>Your Cart</h2>`); err != nil {
			return err
		}

		if len(data.Items) == 0 {
			if _, err := io.WriteString(w, `<p>No items in cart.</p>`); err != nil {
				return err
			}
		}
		for _, item := range data.Items {
			if err := cartItemRow(w, item); err != nil {
				return err
			}
		}

		if err := optionsForm(w, data); err != nil {
			return err
		}

		if data.Quotation.Empty() {
			if _, err := io.WriteString(w,
				`<div class="empty-state"><h3>Your cart is empty</h3><a class="back-button" href="/">Back to Products</a></div></div>`); err != nil {
				return err
			}
			return nil
		}

		if err := quotationPreview(w, data.Quotation); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<a class="checkout-button" href="/quotation/export/pdf">Download PDF</a>`+
				`<a class="checkout-button" href="/quotation/export/excel">Download Excel</a>`+
				`<a class="back-button" href="/">Back to Products</a></div>`)
		return err
	})
}

func cartItemRow(w io.Writer, item CartItemView) error {
	base := fmt.Sprintf("/cart/%s/%s", url.PathEscape(item.Category), url.PathEscape(item.ProductID))
	_, err := fmt.Fprintf(w,
		`<div class="cart-item"><div class="cart-item-details"><p class="cart-item-name">%s</p><p class="cart-item-quantity">Quantity: %d</p></div>`+
			`<div class="cart-counter">`+
			`<button hx-post="%s/decrement" hx-target="#main" hx-swap="innerHTML">-</button>`+
			`<span>%d</span>`+
			`<button hx-post="%s/increment" hx-target="#main" hx-swap="innerHTML">+</button>`+
			`</div></div>`,
		esc(item.Name), item.Qty, base, item.Qty, base)
	return err
}

func optionsForm(w io.Writer, data CartPageData) error {
	if _, err := fmt.Fprintf(w,
		`<form class="cart-options" hx-post="/cart/options" hx-target="#main" hx-swap="innerHTML">`+
			`<label>Discount (%%): <input type="text" name="discount" value="%s"></label>`+
			`<label>Quotation Title: <input type="text" name="title" value="%s"></label>`+
			`<label>Customer Name: <input type="text" name="customer" value="%s"></label>`,
		esc(data.DiscountInput), esc(data.Title), esc(data.Customer)); err != nil {
		return err
	}

	for _, extra := range data.Extras {
		checked := ""
		if extra.State.Included {
			checked = " checked"
		}
		if _, err := fmt.Fprintf(w,
			`<div class="extra"><label><input type="checkbox" name="extra_%s_included"%s> Add %s</label>`+
				`<label>Price (₹): <input type="text" name="extra_%s_price" value="%s" placeholder="Enter price"></label></div>`,
			esc(extra.Def.Slug), checked, esc(extra.Def.Name),
			esc(extra.Def.Slug), esc(extra.State.PriceInput)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, `<button type="submit">Apply</button></form>`)
	return err
}

func quotationPreview(w io.Writer, q services.Quotation) error {
	if _, err := io.WriteString(w,
		`<table class="quotation-preview"><thead><tr>`+
			`<th>S.No</th><th>Name</th><th>Description</th><th>Price</th><th>Qty</th><th>Total</th>`+
			`</tr></thead><tbody>`); err != nil {
		return err
	}
	for _, item := range q.Items {
		if _, err := fmt.Fprintf(w,
			`<tr class="origin-%s"><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>`,
			esc(string(item.Origin)), item.SNo, esc(item.Name), esc(item.Description),
			esc(formatPrice(item.UnitPrice)), item.Qty, esc(formatPrice(item.Total))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w,
		`</tbody></table><div class="totals">`+
			`<p>All Products Subtotal: <strong>%s</strong></p>`+
			`<p>Discount (%g%%): <strong>-%s</strong></p>`+
			`<p>Exempt Extras: <strong>%s</strong></p>`+
			`<h3>Final Amount: %s</h3></div>`,
		esc(formatPrice(q.ProductsSubtotal)), q.DiscountPercent, esc(formatPrice(q.DiscountAmount)),
		esc(formatPrice(q.ExemptExtrasTotal)), esc(formatPrice(q.FinalTotal)))
	return err
}

// AcousticsPage renders the acoustics quotation form.
func AcousticsPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<div class="acoustics-page"><h2>Create Acoustics</h2>`+
				`<form method="post" action="/acoustics/export">`); err != nil {
			return err
		}
		for _, surface := range []string{"wall", "ceiling", "flooring"} {
			if _, err := fmt.Fprintf(w,
				`<div class="acoustics-row"><label><input type="checkbox" name="%s_checked"> %s Acoustics</label>`+
					`<label>SFT: <input type="text" name="%s_sft"></label>`+
					`<label>Price (₹): <input type="text" name="%s_price"></label></div>`,
				surface, esc(titleCase(surface)), surface, surface); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<button type="submit">Download PDF</button></form></div>`)
		return err
	})
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
