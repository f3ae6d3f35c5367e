package lib

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DecodeRegisterForm and DecodeLoginForm live with the handlers; this file
// only owns the generic pieces: trimming, validation, and message mapping.

// TrimmedFormValue returns the form value with surrounding whitespace
// stripped. Passwords must not go through this.
func TrimmedFormValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// ValidateStruct runs validator tags on a form struct and converts the first
// failure into an inline form message.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if ok := asValidationErrors(err, &ve); ok && len(ve) > 0 {
		return &ValidationError{
			Field:  strings.ToLower(ve[0].Field()),
			Reason: tagMessage(ve[0]),
		}
	}
	return err
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = ve
	return true
}

func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "eqfield":
		return "does not match"
	default:
		return "is invalid"
	}
}
