package middleware

import (
	"context"
	"net/http"
	"plantstore_server/handling"
	"plantstore_server/lib"
	"plantstore_server/structs"

	"github.com/MonkyMars/gecho"
)

// Context keys for request-scoped session data
type contextKey string

const sessionContextKey contextKey = "session"

// LoadSession resolves the session cookie on every request and, when valid,
// attaches the session to the request context. It never blocks a request by
// itself; the Require* middleware below do the gating.
func (mw *Middleware) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := lib.GetCookieValue(mw.cfg.Session.CookieName, r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := mw.sessionService.Load(r.Context(), token)
		if err != nil {
			// An expired or tampered cookie reads as anonymous; the stale
			// cookie is cleared so the browser stops sending it.
			if err != lib.ErrInvalidSession {
				mw.logger.Error("Session store failure", gecho.Field("error", err))
			}
			lib.ClearSessionCookie(mw.cfg.Session.CookieName, w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser gates routes to any logged-in user.
func (mw *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			handling.RedirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireCustomer gates routes to the customer role.
func (mw *Middleware) RequireCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok || !sess.IsCustomer() {
			handling.RedirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates routes to the admin role. A wrong role redirects to
// login exactly like a missing session.
func (mw *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok || !sess.IsAdmin() {
			if ok {
				mw.logger.Warn("Non-admin session on admin route",
					gecho.Field("user_id", sess.UserID),
					gecho.Field("role", sess.UserRole),
				)
			}
			handling.RedirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromContext extracts the session attached by LoadSession.
func SessionFromContext(ctx context.Context) (*structs.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*structs.Session)
	return sess, ok
}
