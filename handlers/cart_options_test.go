package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quotationcreation/cart"
)

func postOptions(t *testing.T, sess *cart.Session, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/cart/options", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withSession(req, sess)
	rec := httptest.NewRecorder()

	if err := HandleCartOptions()(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestHandleCartOptions_StoresInputs(t *testing.T) {
	sess := newTestSession()

	postOptions(t, sess, url.Values{
		"discount": {"15"},
		"title":    {"Quotation for Dolby Atmos Room"},
		"customer": {"Ravi Kumar"},
	})

	snap := sess.Snapshot()
	if snap.DiscountInput != "15" {
		t.Errorf("discount = %q, want %q", snap.DiscountInput, "15")
	}
	if snap.Title != "Quotation for Dolby Atmos Room" {
		t.Errorf("title = %q", snap.Title)
	}
	if snap.Customer != "Ravi Kumar" {
		t.Errorf("customer = %q", snap.Customer)
	}
}

func TestHandleCartOptions_StoresExtras(t *testing.T) {
	sess := newTestSession()

	postOptions(t, sess, url.Values{
		"extra_power-amplifier_included": {"on"},
		"extra_power-amplifier_price":    {"45000"},
		"extra_kordz-cables_price":       {"30000"},
	})

	snap := sess.Snapshot()
	amp := snap.Extras["power-amplifier"]
	if !amp.Included || amp.PriceInput != "45000" {
		t.Errorf("power-amplifier state = %+v", amp)
	}
	kordz := snap.Extras["kordz-cables"]
	if kordz.Included {
		t.Error("kordz-cables should be excluded without its checkbox")
	}
	if kordz.PriceInput != "30000" {
		t.Errorf("kordz-cables price = %q, want retained input", kordz.PriceInput)
	}
}

func TestHandleCartOptions_ExtraAffectsRenderedTotal(t *testing.T) {
	sess := newTestSession()
	sess.AddProduct(cart.Product{ID: "p1", Name: "Polk Monitor XT70", Price: 500, Category: "Speakers"}, "Speakers")

	rec := postOptions(t, sess, url.Values{
		"discount":                       {"10"},
		"extra_power-amplifier_included": {"on"},
		"extra_power-amplifier_price":    {"500"},
		"extra_kordz-cables_included":    {"on"},
		"extra_kordz-cables_price":       {"1000"},
	})

	// (500 + 500) - 10% + 1000 = 1900
	if !strings.Contains(rec.Body.String(), "₹1,900.00") {
		t.Error("expected final amount ₹1,900.00 in rendered cart page")
	}
}
