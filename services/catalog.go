package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"

	"quotationcreation/cart"
)

// Categories lists the catalog categories offered on the landing page,
// in display order.
var Categories = []string{
	"Speakers",
	"In-Wall Speakers",
	"SubWoofer",
	"AV Receiver",
	"Projectors",
	"Screen",
}

// FetchProductsByCategory returns the products of one category, ordered
// by name. A fetch failure is category-scoped and leaves the caller's
// cart and catalog cache untouched.
func FetchProductsByCategory(app *pocketbase.PocketBase, category string) ([]cart.Product, error) {
	records, err := app.FindRecordsByFilter(
		"products",
		"category = {:category}",
		"name",
		0,
		0,
		map[string]any{"category": category},
	)
	if err != nil {
		return nil, fmt.Errorf("load products for %s: %w", category, err)
	}

	products := make([]cart.Product, 0, len(records))
	for _, r := range records {
		products = append(products, cart.Product{
			ID:          r.Id,
			Name:        r.GetString("name"),
			Description: r.GetString("description"),
			Price:       r.GetFloat("price"),
			Category:    category,
		})
	}
	return products, nil
}

// FindProduct loads a single product record by ID.
func FindProduct(app *pocketbase.PocketBase, id, category string) (cart.Product, error) {
	r, err := app.FindRecordById("products", id)
	if err != nil {
		return cart.Product{}, fmt.Errorf("product %s not found: %w", id, err)
	}
	return cart.Product{
		ID:          r.Id,
		Name:        r.GetString("name"),
		Description: r.GetString("description"),
		Price:       r.GetFloat("price"),
		Category:    category,
	}, nil
}
