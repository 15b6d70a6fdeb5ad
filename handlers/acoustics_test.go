package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func postAcoustics(t *testing.T, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/acoustics/export", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	if err := HandleAcousticsExport(testConfig())(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestHandleAcousticsPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/acoustics", nil)
	rec := httptest.NewRecorder()

	if err := HandleAcousticsPage()(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	for _, label := range []string{"Wall Acoustics", "Ceiling Acoustics", "Flooring Acoustics"} {
		if !strings.Contains(body, label) {
			t.Errorf("expected %q in body", label)
		}
	}
}

func TestHandleAcousticsExport_Success(t *testing.T) {
	rec := postAcoustics(t, url.Values{
		"wall_checked":    {"on"},
		"wall_sft":        {"850"},
		"wall_price":      {"400"},
		"ceiling_checked": {"on"},
		"ceiling_sft":     {"650"},
		"ceiling_price":   {"200"},
	})

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content-type = %q, want application/pdf", ct)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "acoustics-quotation.pdf") {
		t.Errorf("unexpected Content-Disposition %q", rec.Header().Get("Content-Disposition"))
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("expected PDF body")
	}
}

func TestHandleAcousticsExport_NothingSelectedRedirects(t *testing.T) {
	rec := postAcoustics(t, url.Values{
		"wall_sft":   {"850"},
		"wall_price": {"400"},
	})

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/acoustics" {
		t.Errorf("redirect location = %q, want /acoustics", loc)
	}
}

func TestHandleAcousticsExport_InvalidInputsRedirect(t *testing.T) {
	rec := postAcoustics(t, url.Values{
		"wall_checked": {"on"},
		"wall_sft":     {"abc"},
		"wall_price":   {"400"},
	})

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302 for unparsable inputs, got %d", rec.Code)
	}
}
