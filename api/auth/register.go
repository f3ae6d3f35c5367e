package auth

import (
	"errors"
	"net/http"
	"plantstore_server/handling"
	"plantstore_server/lib"
	"plantstore_server/structs"
	"plantstore_server/views"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) ShowRegister(w http.ResponseWriter, r *http.Request) {
	arm.renderRegister(w, "", nil)
}

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	// Passwords are taken verbatim; every other field is trimmed.
	form := &structs.RegisterForm{
		Name:            lib.TrimmedFormValue(r, "name"),
		Email:           lib.TrimmedFormValue(r, "email"),
		Phone:           lib.TrimmedFormValue(r, "phone"),
		Address:         lib.TrimmedFormValue(r, "address"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	if err := lib.ValidateStruct(form); err != nil {
		arm.renderRegister(w, registerErrorMessage(err), form)
		return
	}

	_, err := arm.authService.Register(r.Context(), form)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			arm.renderRegister(w, "An account with this email already exists.", form)
			return
		}
		arm.logger.Error("Registration failed", gecho.Field("error", err))
		arm.renderRegister(w, "Registration failed due to a database error.", form)
		return
	}

	handling.RedirectWithMessage(w, r, "/login", "Registration successful! Please log in.")
}

func registerErrorMessage(err error) string {
	var ve *lib.ValidationError
	if errors.As(err, &ve) {
		if ve.Field == "confirmpassword" {
			return "Passwords do not match."
		}
		return ve.Field + " " + ve.Reason + "."
	}
	return "Please check your registration information."
}

func (arm *AuthRoutesManager) renderRegister(w http.ResponseWriter, errMsg string, form *structs.RegisterForm) {
	page := &views.FormPage{Error: errMsg}
	if form != nil {
		page.Values = map[string]string{
			"name":    form.Name,
			"email":   form.Email,
			"phone":   form.Phone,
			"address": form.Address,
		}
	}
	if err := views.Render(w, "register.html", page); err != nil {
		arm.logger.Error("Failed to render register page", gecho.Field("error", err))
	}
}
