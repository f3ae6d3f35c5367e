package auth

import (
	"net/http"
	"plantstore_server/api/middleware"
	"plantstore_server/handling"
	"plantstore_server/lib"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	// Dropping the session discards identity and the pending cart pointer
	// together; the order rows themselves stay in the database.
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		if err := arm.sessionService.Destroy(r.Context(), sess); err != nil {
			arm.logger.Error("Failed to destroy session", gecho.Field("error", err), gecho.Field("user_id", sess.UserID))
		}
	}

	lib.ClearSessionCookie(arm.cfg.Session.CookieName, w)
	handling.RedirectWithMessage(w, r, "/login", "You have been successfully logged out.")
}
