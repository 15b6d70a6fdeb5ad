package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotationcreation/cart"
)

type contextKey string

const SessionKey contextKey = "quotationSession"

const sessionCookieName = "quotation_session"

// GetSession extracts the cart session from the request context.
func GetSession(r *http.Request) *cart.Session {
	if val, ok := r.Context().Value(SessionKey).(*cart.Session); ok {
		return val
	}
	return nil
}

// SessionMiddleware resolves the cart session from the session cookie,
// creating a fresh one when the cookie is missing or stale, and stores
// it in the request context for the handlers.
func SessionMiddleware(sessions *cart.Sessions) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var cookieID string
		if cookie, err := e.Request.Cookie(sessionCookieName); err == nil {
			cookieID = cookie.Value
		}

		sess := sessions.GetOrCreate(cookieID)
		if sess.ID() != cookieID {
			http.SetCookie(e.Response, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sess.ID(),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(e.Request.Context(), SessionKey, sess)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}
