package admin

import (
	"net/http"
	"plantstore_server/handling"
	"plantstore_server/views"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (arm *AdminRoutesManager) ShowIndex(w http.ResponseWriter, r *http.Request) {
	page := &views.AdminIndex{Tables: arm.adminService.Tables()}
	if err := views.Render(w, "admin_page.html", page); err != nil {
		arm.logger.Error("Failed to render admin index", gecho.Field("error", err))
	}
}

func (arm *AdminRoutesManager) ViewTable(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	// A table outside the allow-list redirects to login, same as a missing
	// session would.
	if !arm.policy.IsListable(table) {
		handling.RedirectToLogin(w, r)
		return
	}

	rows, err := arm.adminService.ListTable(r.Context(), table)
	if err != nil {
		handling.HandleError(err, "failed to list table "+table, arm.logger, w)
		return
	}

	// Edit links only exist for tables with an editable schema; order and
	// order_items render read-only. The primary key is resolved by name in
	// the result-set headers, not assumed to be the first column.
	canEdit := arm.policy.IsEditable(table)
	pkIndex := -1
	if canEdit {
		pk := arm.policy.PrimaryKey(table)
		for i, h := range rows.Headers {
			if h == pk {
				pkIndex = i
				break
			}
		}
	}

	page := &views.TableView{
		Table:   table,
		Headers: rows.Headers,
		Rows:    rows.Rows,
		CanEdit: canEdit,
		PKIndex: pkIndex,
		Message: r.URL.Query().Get("message"),
		Error:   r.URL.Query().Get("error"),
	}
	if err := views.Render(w, "admin_table_view.html", page); err != nil {
		arm.logger.Error("Failed to render table view", gecho.Field("error", err), gecho.Field("table", table))
	}
}
