package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqldb.SetMaxOpenConns(1)
	t.Cleanup(func() { sqldb.Close() })

	bundb := bun.NewDB(sqldb, sqlitedialect.New())
	_, err = bundb.ExecContext(context.Background(), `CREATE TABLE plant (
		plant_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		type TEXT,
		price REAL NOT NULL,
		stock_quantity INTEGER NOT NULL,
		supplier_id INTEGER,
		category TEXT
	)`)
	if err != nil {
		t.Fatalf("create schema: %v", err)
	}

	return &DB{bundb}
}

var plantColumns = []string{"name", "type", "price", "stock_quantity", "supplier_id", "category"}

func insertPlant(t *testing.T, db *DB, name string, price float64, stock int64) {
	t.Helper()
	values := []any{name, "Tropical", price, stock, int64(1), "Indoor"}
	if err := InsertRow(context.Background(), db.DB, "plant", plantColumns, values); err != nil {
		t.Fatalf("insert plant: %v", err)
	}
}

func TestSelectAllEmptyTableYieldsEmptyHeaders(t *testing.T) {
	db := newTestDB(t)

	out, err := db.SelectAll(context.Background(), "plant")
	if err != nil {
		t.Fatalf("SelectAll: %v", err)
	}
	if out.Headers == nil || len(out.Headers) != 0 {
		t.Errorf("Headers = %v, want empty non-nil slice", out.Headers)
	}
	if len(out.Rows) != 0 {
		t.Errorf("Rows = %v, want none", out.Rows)
	}
}

func TestSelectAllHeadersAndRows(t *testing.T) {
	db := newTestDB(t)
	insertPlant(t, db, "Fern", 9.5, 3)
	insertPlant(t, db, "Cactus", 4, 10)

	out, err := db.SelectAll(context.Background(), "plant")
	if err != nil {
		t.Fatalf("SelectAll: %v", err)
	}
	if len(out.Headers) == 0 || out.Headers[0] != "plant_id" {
		t.Fatalf("Headers = %v, want plant_id first", out.Headers)
	}
	if len(out.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(out.Rows))
	}
	// Every cell comes back as display text.
	if out.Rows[0][1] != "Fern" || out.Rows[0][2] != "Tropical" {
		t.Errorf("first row = %v", out.Rows[0])
	}
}

func TestSelectByPK(t *testing.T) {
	db := newTestDB(t)
	insertPlant(t, db, "Fern", 9.5, 3)

	rec, err := db.SelectByPK(context.Background(), "plant", "plant_id", 1)
	if err != nil {
		t.Fatalf("SelectByPK: %v", err)
	}
	if rec == nil {
		t.Fatal("existing row came back nil")
	}
	if rec.Values["name"] != "Fern" {
		t.Errorf("name = %q, want Fern", rec.Values["name"])
	}
	if rec.Values["price"] != "9.5" {
		t.Errorf("price = %q, want 9.5", rec.Values["price"])
	}

	missing, err := db.SelectByPK(context.Background(), "plant", "plant_id", 99)
	if err != nil {
		t.Fatalf("SelectByPK(missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("missing row = %+v, want nil", missing)
	}
}

func TestUpdateRowReportsAffected(t *testing.T) {
	db := newTestDB(t)
	insertPlant(t, db, "Fern", 9.5, 3)

	values := []any{"Fern", "Tropical", 12.0, int64(7), int64(1), "Indoor"}
	affected, err := UpdateRow(context.Background(), db.DB, "plant", plantColumns, values, "plant_id", 1)
	if err != nil {
		t.Fatalf("UpdateRow: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}

	rec, err := db.SelectByPK(context.Background(), "plant", "plant_id", 1)
	if err != nil {
		t.Fatalf("SelectByPK: %v", err)
	}
	if rec.Values["price"] != "12" {
		t.Errorf("price after update = %q, want 12", rec.Values["price"])
	}

	affected, err = UpdateRow(context.Background(), db.DB, "plant", plantColumns, values, "plant_id", 99)
	if err != nil {
		t.Fatalf("UpdateRow(missing): %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected for missing row = %d, want 0", affected)
	}
}
