package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quotationcreation/cart"
	"quotationcreation/testhelpers"
)

func TestHandleCartView_EmptyCart(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req = withSession(req, newTestSession())
	rec := httptest.NewRecorder()

	if err := HandleCartView()(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Your cart is empty") {
		t.Error("expected empty state")
	}
	if strings.Contains(body, "Final Amount") {
		t.Error("did not expect quotation preview for empty cart")
	}
}

func TestHandleCartView_ShowsQuotationPreview(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	sess := newTestSession()
	sess.AddProduct(cart.Product{ID: "p1", Name: "Elite Screens 120", Price: 400, Category: "Screen"}, "Screen")
	sess.AddProduct(cart.Product{ID: "p1", Name: "Elite Screens 120", Price: 400, Category: "Screen"}, "Screen")
	sess.SetOptions("10", "", "", nil)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req = withSession(req, sess)
	rec := httptest.NewRecorder()

	if err := HandleCartView()(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Elite Screens 120") {
		t.Error("expected carted product in preview")
	}
	// 2 x 400 = 800, minus 10% = 720
	if !strings.Contains(body, "₹800.00") {
		t.Error("expected subtotal ₹800.00 in preview")
	}
	if !strings.Contains(body, "₹720.00") {
		t.Error("expected final amount ₹720.00 in preview")
	}
}

func TestHandleCartView_FragmentForHTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("HX-Request", "true")
	req = withSession(req, newTestSession())
	rec := httptest.NewRecorder()

	if err := HandleCartView()(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
		t.Error("expected fragment for HTMX request, got full page")
	}
}
