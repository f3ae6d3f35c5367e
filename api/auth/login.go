package auth

import (
	"net/http"
	"plantstore_server/lib"
	"plantstore_server/structs"
	"plantstore_server/views"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) ShowLogin(w http.ResponseWriter, r *http.Request) {
	arm.renderLogin(w, "", r.URL.Query().Get("message"), nil)
}

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	form := &structs.LoginForm{
		Username: lib.TrimmedFormValue(r, "username"),
		Password: r.FormValue("password"),
	}

	if err := lib.ValidateStruct(form); err != nil {
		arm.renderLogin(w, "Invalid username or password.", "", form)
		return
	}

	customer, err := arm.authService.Login(r.Context(), form)
	if err != nil {
		// Service already logged the detail; the form never distinguishes
		// unknown user from wrong password.
		arm.renderLogin(w, "Invalid username or password.", "", form)
		return
	}

	token, err := arm.sessionService.Create(r.Context(), customer.CustomerID, customer.Role)
	if err != nil {
		arm.logger.Error("Failed to create session", gecho.Field("error", err), gecho.Field("customer_id", customer.CustomerID))
		arm.renderLogin(w, "An unexpected error occurred during login.", "", form)
		return
	}

	lib.SetSessionCookie(arm.cfg.Session.CookieName, token, w)

	// Role-based landing page.
	if customer.Role == structs.RoleAdmin {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/shop", http.StatusSeeOther)
}

func (arm *AuthRoutesManager) renderLogin(w http.ResponseWriter, errMsg, message string, form *structs.LoginForm) {
	page := &views.FormPage{Error: errMsg, Message: message}
	if form != nil {
		page.Values = map[string]string{"username": form.Username}
	}
	if err := views.Render(w, "login.html", page); err != nil {
		arm.logger.Error("Failed to render login page", gecho.Field("error", err))
	}
}
