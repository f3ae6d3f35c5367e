package services

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"plantstore_server/lib"
	"plantstore_server/policy"

	"github.com/MonkyMars/gecho"
)

func newTestAdminService() *AdminService {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	return NewAdminService(logger, nil, policy.Default())
}

func TestParseColumnValueStrings(t *testing.T) {
	got, err := parseColumnValue("name", "  Monstera  ")
	if err != nil {
		t.Fatalf("parseColumnValue: %v", err)
	}
	if got != "Monstera" {
		t.Errorf("value = %q, want %q", got, "Monstera")
	}
}

func TestParseColumnValueNumeric(t *testing.T) {
	// Dot means float, no dot means integer.
	got, err := parseColumnValue("price", "12.50")
	if err != nil {
		t.Fatalf("parseColumnValue(price): %v", err)
	}
	if f, ok := got.(float64); !ok || f != 12.5 {
		t.Errorf("price = %v (%T), want float64 12.5", got, got)
	}

	got, err = parseColumnValue("stock_quantity", " 30 ")
	if err != nil {
		t.Fatalf("parseColumnValue(stock_quantity): %v", err)
	}
	if n, ok := got.(int64); !ok || n != 30 {
		t.Errorf("stock_quantity = %v (%T), want int64 30", got, got)
	}
}

func TestParseColumnValueRejectsBadNumbers(t *testing.T) {
	for _, raw := range []string{"abc", "12,50", "1.2.3", ""} {
		_, err := parseColumnValue("price", raw)
		if !lib.IsValidation(err) {
			t.Errorf("parseColumnValue(price, %q): err = %v, want validation error", raw, err)
		}
	}
}

func TestParseFormValuesOrderedBySchema(t *testing.T) {
	s := newTestAdminService()

	form := url.Values{}
	form.Set("category", "Indoor")
	form.Set("name", "Fern")
	form.Set("type", "Tropical")
	form.Set("price", "9.99")
	form.Set("stock_quantity", "5")
	form.Set("supplier_id", "2")

	columns, values, err := s.ParseFormValues("plant", form)
	if err != nil {
		t.Fatalf("ParseFormValues: %v", err)
	}

	wantCols := []string{"name", "type", "price", "stock_quantity", "supplier_id", "category"}
	if !reflect.DeepEqual(columns, wantCols) {
		t.Fatalf("columns = %v, want %v", columns, wantCols)
	}

	wantVals := []any{"Fern", "Tropical", 9.99, int64(5), "2", "Indoor"}
	if !reflect.DeepEqual(values, wantVals) {
		t.Fatalf("values = %v, want %v", values, wantVals)
	}
}

func TestParseFormValuesRejectsUnknownColumn(t *testing.T) {
	s := newTestAdminService()

	form := url.Values{}
	form.Set("name", "Fern")
	form.Set("is_admin", "true")

	_, _, err := s.ParseFormValues("customer", form)
	if !lib.IsValidation(err) {
		t.Fatalf("err = %v, want validation error for unknown column", err)
	}
}

func TestParseFormValuesUnknownTable(t *testing.T) {
	s := newTestAdminService()

	_, _, err := s.ParseFormValues("users", url.Values{})
	if !errors.Is(err, lib.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTablesMatchPolicy(t *testing.T) {
	s := newTestAdminService()

	want := []string{"plant", "customer", "supplier", "order", "order_items"}
	if got := s.Tables(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Tables() = %v, want %v", got, want)
	}
}
