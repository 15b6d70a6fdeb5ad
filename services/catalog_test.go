package services_test

import (
	"testing"

	"quotationcreation/services"
	"quotationcreation/testhelpers"
)

func TestFetchProductsByCategory(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProduct(t, app, "Polk Monitor XT70", "Speakers", 25000)
	testhelpers.CreateTestProduct(t, app, "Klipsch RP-8000F II", "Speakers", 65000)
	testhelpers.CreateTestProduct(t, app, "BenQ W2700", "Projectors", 139000)

	products, err := services.FetchProductsByCategory(app, "Speakers")
	if err != nil {
		t.Fatalf("FetchProductsByCategory returned error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("len(products) = %d, want 2", len(products))
	}
	// Ordered by name.
	if products[0].Name != "Klipsch RP-8000F II" || products[1].Name != "Polk Monitor XT70" {
		t.Errorf("unexpected order: %q, %q", products[0].Name, products[1].Name)
	}
	for _, p := range products {
		if p.Category != "Speakers" {
			t.Errorf("product %q category = %q", p.Name, p.Category)
		}
		if p.ID == "" {
			t.Errorf("product %q has empty ID", p.Name)
		}
	}
}

func TestFetchProductsByCategory_EmptyCategory(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	products, err := services.FetchProductsByCategory(app, "Screen")
	if err != nil {
		t.Fatalf("FetchProductsByCategory returned error: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("len(products) = %d, want 0", len(products))
	}
}

func TestFindProduct(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := testhelpers.CreateTestProduct(t, app, "SVS PB-1000 Pro", "SubWoofer", 62000)

	p, err := services.FindProduct(app, rec.Id, "SubWoofer")
	if err != nil {
		t.Fatalf("FindProduct returned error: %v", err)
	}
	if p.Name != "SVS PB-1000 Pro" || p.Price != 62000 || p.Category != "SubWoofer" {
		t.Errorf("unexpected product: %+v", p)
	}

	if _, err := services.FindProduct(app, "missing", "SubWoofer"); err == nil {
		t.Error("expected error for missing product")
	}
}
