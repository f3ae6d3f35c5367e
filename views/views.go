// Package views renders the minimal HTML surface. Rendering is deliberately
// thin glue; every interesting decision happens before a template is reached.
package views

import (
	"embed"
	"html/template"
	"net/http"
	"plantstore_server/structs/tables"
	"strings"
)

//go:embed templates/*.html
var files embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"display": DisplayName,
}).ParseFS(files, "templates/*.html"))

// DisplayName turns a table identifier into a heading: "order_items" becomes
// "Order Items".
func DisplayName(table string) string {
	words := strings.Split(strings.ReplaceAll(table, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func Render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return pages.ExecuteTemplate(w, name, data)
}

// FormPage backs the login and register forms.
type FormPage struct {
	Error   string
	Message string
	Values  map[string]string
}

// AdminIndex lists the allow-listed tables.
type AdminIndex struct {
	Tables []string
}

// TableView is the generic listing of one table. PKIndex is the position of
// the primary key column within Headers, or -1 when the result set does not
// carry it; edit links only render with a resolved index.
type TableView struct {
	Table   string
	Headers []string
	Rows    [][]string
	CanEdit bool
	PKIndex int
	Message string
	Error   string
}

// AddForm backs /admin/add/{table}.
type AddForm struct {
	Table   string
	Fields  []string
	Error   string
	Message string
	Values  map[string]string
}

// EditForm backs /admin/edit/{table}/{id}. Record holds the original row so
// a failed validation re-renders with the stored values.
type EditForm struct {
	Table    string
	RecordID int64
	Fields   []string
	Record   map[string]string
	Error    string
}

// ShopPage backs /shop.
type ShopPage struct {
	Plants  []tables.Plant
	Message string
	Error   string
}
