// Package services contains the quotation projection and the document
// exporters built on top of it.
package services

import (
	"log"
	"strconv"
	"strings"

	"quotationcreation/cart"
)

// LineOrigin tags where a quotation line item came from.
type LineOrigin string

const (
	// OriginCatalog marks a line resolved from a cart entry.
	OriginCatalog LineOrigin = "catalog"
	// OriginEligibleExtra marks a manual extra that joins the
	// discount-bearing subtotal.
	OriginEligibleExtra LineOrigin = "eligible-extra"
	// OriginExemptExtra marks a manual extra added after the discount
	// is applied.
	OriginExemptExtra LineOrigin = "exempt-extra"
)

// LineItem is one row of the quotation.
type LineItem struct {
	SNo         int
	Name        string
	Description string
	UnitPrice   float64
	Qty         int
	Total       float64
	Origin      LineOrigin
}

// Quotation is the fully computed, immutable projection of a cart
// snapshot plus user adjustments. It is recomputed on every read and
// never persisted.
type Quotation struct {
	Items             []LineItem
	DiscountPercent   float64
	ProductsSubtotal  float64
	DiscountAmount    float64
	ExemptExtrasTotal float64
	FinalTotal        float64
}

// Empty reports the explicit empty state: no catalog line items and no
// included, validly priced extras. Distinct from a zero-total quotation.
func (q Quotation) Empty() bool {
	return len(q.Items) == 0
}

// ExtraDef declares one optional non-catalog line item. The
// DiscountEligible flag is fixed per extra type: eligible extras are
// treated like catalog items for subtotal and discount purposes, exempt
// extras are quoted at list price after the discount.
type ExtraDef struct {
	Slug             string
	Name             string
	Description      string
	DiscountEligible bool
}

// ExtraDefs is the closed set of extras offered on the cart page, in
// document order.
var ExtraDefs = []ExtraDef{
	{
		Slug:             "power-amplifier",
		Name:             "Power Amplifier",
		Description:      "High-quality power amplifier suitable for home theater and stereo setups",
		DiscountEligible: true,
	},
	{
		Slug: "kordz-cables",
		Name: "Kordz-Cables and Accessories",
		Description: "Kordz 4K Supported HDMI cable (10 mtrs.), Kordz 16Gauge Speaker cable, " +
			"Subwoofer Cable, Universal projector ceiling mount bracket, UPS, Stabilizer, Apple TV",
		DiscountEligible: false,
	},
}

// ExtraDefBySlug looks up an extra definition by its slug.
func ExtraDefBySlug(slug string) (ExtraDef, bool) {
	for _, def := range ExtraDefs {
		if def.Slug == slug {
			return def, true
		}
	}
	return ExtraDef{}, false
}

// ParseDiscount converts the raw discount input to a percentage in
// [0, 100]. Unparsable input degrades to 0 instead of failing.
func ParseDiscount(input string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// parseExtraPrice parses a manual extra price. Unparsable or negative
// input excludes the extra regardless of its toggle state.
func parseExtraPrice(input string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// BuildQuotation projects a session snapshot into a quotation. It never
// fails: cart entries without a catalog snapshot are skipped with a
// logged warning, and invalid discount or price inputs degrade to safe
// defaults, so a quotation (possibly empty) can always be produced.
func BuildQuotation(snap cart.Snapshot) Quotation {
	q := Quotation{DiscountPercent: ParseDiscount(snap.DiscountInput)}

	for _, k := range snap.Cart.Keys() {
		p, ok := snap.Catalog.Lookup(k)
		if !ok {
			log.Printf("quotation: no catalog snapshot for cart key %q, skipping", k)
			continue
		}
		qty := snap.Cart.Quantity(k)
		q.Items = append(q.Items, LineItem{
			SNo:         len(q.Items) + 1,
			Name:        p.Name,
			Description: p.Description,
			UnitPrice:   p.Price,
			Qty:         qty,
			Total:       p.Price * float64(qty),
			Origin:      OriginCatalog,
		})
	}

	// Eligible extras join the discount-bearing subtotal.
	for _, def := range ExtraDefs {
		if !def.DiscountEligible {
			continue
		}
		if item, ok := resolveExtra(def, snap.Extras, len(q.Items)+1, OriginEligibleExtra); ok {
			q.Items = append(q.Items, item)
		}
	}

	for _, item := range q.Items {
		q.ProductsSubtotal += item.Total
	}
	q.DiscountAmount = q.ProductsSubtotal * q.DiscountPercent / 100

	// Exempt extras trail the list and are added after the discount.
	for _, def := range ExtraDefs {
		if def.DiscountEligible {
			continue
		}
		if item, ok := resolveExtra(def, snap.Extras, len(q.Items)+1, OriginExemptExtra); ok {
			q.Items = append(q.Items, item)
			q.ExemptExtrasTotal += item.Total
		}
	}

	q.FinalTotal = q.ProductsSubtotal - q.DiscountAmount + q.ExemptExtrasTotal
	return q
}

func resolveExtra(def ExtraDef, states map[string]cart.ExtraState, sno int, origin LineOrigin) (LineItem, bool) {
	st, ok := states[def.Slug]
	if !ok || !st.Included {
		return LineItem{}, false
	}
	price, ok := parseExtraPrice(st.PriceInput)
	if !ok {
		return LineItem{}, false
	}
	return LineItem{
		SNo:         sno,
		Name:        def.Name,
		Description: def.Description,
		UnitPrice:   price,
		Qty:         1,
		Total:       price,
		Origin:      origin,
	}, true
}
