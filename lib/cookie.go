package lib

import (
	"net/http"
	"plantstore_server/config"
	"time"
)

// SetSessionCookie sets the HttpOnly session cookie. No Expires/Max-Age is
// set: the browser keeps it for the browsing session while the real
// inactivity expiry lives server-side in Redis.
func SetSessionCookie(name, val string, w http.ResponseWriter) {
	secure := config.IsProduction()

	cookie := &http.Cookie{
		Name:     name,
		Value:    val,
		Path:     "/",
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}

func GetCookieValue(name string, r *http.Request) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ClearSessionCookie removes the cookie from the browser
func ClearSessionCookie(name string, w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}
