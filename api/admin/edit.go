package admin

import (
	"errors"
	"net/http"
	"strconv"

	"plantstore_server/handling"
	"plantstore_server/lib"
	"plantstore_server/views"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (arm *AdminRoutesManager) ShowEditForm(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	if !arm.policy.IsEditable(table) {
		handling.RedirectToLogin(w, r)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	record, err := arm.adminService.FetchRecord(r.Context(), table, id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		handling.RedirectWithError(w, r, "/admin/view/"+table, "Database error. Check server logs.")
		return
	}

	arm.renderEditForm(w, table, id, record.Values, "")
}

func (arm *AdminRoutesManager) HandleEdit(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	if !arm.policy.IsEditable(table) {
		handling.RedirectToLogin(w, r)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		handling.RedirectWithError(w, r, "/admin/view/"+table, "Could not read the submitted form.")
		return
	}

	err = arm.adminService.UpdateRow(r.Context(), table, id, r.PostForm)
	if err != nil {
		switch {
		case lib.IsValidation(err):
			// Nothing was written. Re-fetch the row and render its stored
			// values, so the form shows what is actually in the database and
			// a bogus record ID still comes back as 404.
			record, ferr := arm.adminService.FetchRecord(r.Context(), table, id)
			if ferr != nil {
				if errors.Is(ferr, lib.ErrNotFound) {
					http.NotFound(w, r)
					return
				}
				handling.RedirectWithError(w, r, "/admin/view/"+table, "Database error. Check server logs.")
				return
			}
			arm.renderEditForm(w, table, id, record.Values, numericFormatError)
		case errors.Is(err, lib.ErrNotFound):
			http.NotFound(w, r)
		default:
			handling.RedirectWithError(w, r, "/admin/view/"+table, "Database error. Check server logs.")
		}
		return
	}

	handling.RedirectWithMessage(w, r, "/admin/view/"+table,
		views.DisplayName(table)+" ID "+strconv.FormatInt(id, 10)+" updated successfully!")
}

func (arm *AdminRoutesManager) renderEditForm(w http.ResponseWriter, table string, id int64, record map[string]string, errMsg string) {
	page := &views.EditForm{
		Table:    table,
		RecordID: id,
		Fields:   arm.policy.Schema(table),
		Record:   record,
		Error:    errMsg,
	}
	if err := views.Render(w, "admin_edit_generic.html", page); err != nil {
		arm.logger.Error("Failed to render edit form",
			gecho.Field("error", err),
			gecho.Field("table", table),
		)
	}
}
