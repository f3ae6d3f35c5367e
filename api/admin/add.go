package admin

import (
	"net/http"
	"plantstore_server/handling"
	"plantstore_server/lib"
	"plantstore_server/views"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

const numericFormatError = "Invalid data format. Please ensure Price and Stock Quantity are valid numbers."

func (arm *AdminRoutesManager) ShowAddForm(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	if !arm.policy.IsEditable(table) {
		handling.RedirectToLogin(w, r)
		return
	}

	arm.renderAddForm(w, table, "", r.URL.Query().Get("message"), nil)
}

func (arm *AdminRoutesManager) HandleAdd(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	if !arm.policy.IsEditable(table) {
		handling.RedirectToLogin(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		arm.renderAddForm(w, table, "Could not read the submitted form.", "", nil)
		return
	}

	err := arm.adminService.InsertRow(r.Context(), table, r.PostForm)
	if err != nil {
		if lib.IsValidation(err) {
			// Nothing was written; re-render the form with what the admin
			// typed so only the bad field needs fixing.
			arm.renderAddForm(w, table, numericFormatError, "", r.PostForm.Get)
			return
		}
		arm.renderAddForm(w, table, "Database error. Check server logs.", "", r.PostForm.Get)
		return
	}

	handling.RedirectWithMessage(w, r, "/admin/view/"+table, views.DisplayName(table)+" added successfully!")
}

// renderAddForm draws the add form; lookup, when non-nil, supplies previously
// entered values for re-rendering.
func (arm *AdminRoutesManager) renderAddForm(w http.ResponseWriter, table, errMsg, message string, lookup func(string) string) {
	fields := arm.policy.Schema(table)

	values := make(map[string]string, len(fields))
	if lookup != nil {
		for _, f := range fields {
			values[f] = lookup(f)
		}
	}

	page := &views.AddForm{
		Table:   table,
		Fields:  fields,
		Error:   errMsg,
		Message: message,
		Values:  values,
	}
	if err := views.Render(w, "admin_add_generic.html", page); err != nil {
		arm.logger.Error("Failed to render add form", gecho.Field("error", err), gecho.Field("table", table))
	}
}
