package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quotationcreation/cart"
	"quotationcreation/testhelpers"
)

func TestHandleHome_RendersCategories(t *testing.T) {
	handler := HandleHome()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	for _, category := range []string{"Speakers", "AV Receiver", "Projectors", "Screen"} {
		if !strings.Contains(body, category) {
			t.Errorf("expected category %q in body", category)
		}
	}
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("expected full page for non-HTMX request")
	}
}

func TestHandleCategoryProducts_RendersProducts(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProduct(t, app, "Polk Monitor XT70", "Speakers", 25000)
	testhelpers.CreateTestProduct(t, app, "BenQ W2700", "Projectors", 139000)

	handler := HandleCategoryProducts(app)

	req := httptest.NewRequest(http.MethodGet, "/catalog/Speakers", nil)
	req.SetPathValue("category", "Speakers")
	req = withSession(req, newTestSession())
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Polk Monitor XT70") {
		t.Error("expected Speakers product in body")
	}
	if strings.Contains(body, "BenQ W2700") {
		t.Error("did not expect Projectors product in Speakers listing")
	}
}

func TestHandleCategoryProducts_CachesOnSession(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec1 := testhelpers.CreateTestProduct(t, app, "SVS PB-1000 Pro", "SubWoofer", 62000)

	sess := newTestSession()
	handler := HandleCategoryProducts(app)

	req := httptest.NewRequest(http.MethodGet, "/catalog/SubWoofer", nil)
	req.SetPathValue("category", "SubWoofer")
	req = withSession(req, sess)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	snap := sess.Snapshot()
	key := cart.CompositeKey(cart.Product{ID: rec1.Id, Name: "SVS PB-1000 Pro"}, "SubWoofer")
	if _, ok := snap.Catalog.Lookup(key); !ok {
		t.Error("expected fetched product to be cached on the session")
	}
}

func TestHandleCategoryProducts_ShowsCartedQuantities(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec1 := testhelpers.CreateTestProduct(t, app, "Klipsch RP-8000F II", "Speakers", 65000)

	sess := newTestSession()
	sess.AddProduct(cart.Product{ID: rec1.Id, Name: "Klipsch RP-8000F II", Price: 65000, Category: "Speakers"}, "Speakers")
	sess.IncrementProduct(cart.Product{ID: rec1.Id, Name: "Klipsch RP-8000F II", Price: 65000, Category: "Speakers"}, "Speakers")

	handler := HandleCategoryProducts(app)

	req := httptest.NewRequest(http.MethodGet, "/catalog/Speakers", nil)
	req.SetPathValue("category", "Speakers")
	req = withSession(req, sess)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<span>2</span>") {
		t.Error("expected counter showing quantity 2")
	}
	if strings.Contains(body, "Add to Cart") {
		t.Error("carted product should show a counter, not the add button")
	}
}

func TestHandleCategoryProducts_MissingCategory(t *testing.T) {
	handler := HandleCategoryProducts(nil)

	req := httptest.NewRequest(http.MethodGet, "/catalog/", nil)
	req.SetPathValue("category", "")
	req = withSession(req, newTestSession())
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
