package handling

import (
	"net/http"
	"net/url"

	"github.com/MonkyMars/gecho"
)

// Success and error strings travel across redirects as query parameters;
// there is no server-side flash storage.

// RedirectWithMessage redirects to path with a success message attached.
func RedirectWithMessage(w http.ResponseWriter, r *http.Request, path, message string) {
	redirectWith(w, r, path, "message", message)
}

// RedirectWithError redirects to path with a user-facing error attached.
func RedirectWithError(w http.ResponseWriter, r *http.Request, path, errMsg string) {
	redirectWith(w, r, path, "error", errMsg)
}

func redirectWith(w http.ResponseWriter, r *http.Request, path, key, value string) {
	u := url.URL{Path: path}
	if value != "" {
		q := u.Query()
		q.Set(key, value)
		u.RawQuery = q.Encode()
	}
	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}

// RedirectToLogin is the single response to every authentication and
// authorization failure; callers cannot tell "not logged in" from "not
// allowed".
func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusFound)
}

// HandleError logs the server-side detail and sends a generic failure, never
// raw database error text.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg))
	gecho.InternalServerError(w, gecho.Send())
}
