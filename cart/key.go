// Package cart implements the session-scoped quotation cart engine:
// composite product keys, the ordered cart store, the catalog snapshot
// cache, and the session registry that owns them.
package cart

import "fmt"

// Key identifies a product within a category context. The same physical
// product listed under two categories gets two distinct keys, so it is
// tracked as two independent line items.
type Key string

// CompositeKey derives the stable key for a (category, product) pair.
// It is total: products with missing fields still map to a stable string.
func CompositeKey(p Product, category string) Key {
	return Key(fmt.Sprintf("%s_%s_%s", category, p.ID, p.Name))
}

// Product is a read-only catalog record snapshot.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
}
