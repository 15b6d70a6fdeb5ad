package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationcreation/cart"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// withSession attaches a cart session to the request context, standing
// in for SessionMiddleware.
func withSession(req *http.Request, sess *cart.Session) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), SessionKey, sess))
}

// newTestSession returns a fresh session with the default title.
func newTestSession() *cart.Session {
	return cart.NewSessions("Quotation for Home Theatre 7.1.4").Create()
}
