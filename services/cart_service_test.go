package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"plantstore_server/database"
	"plantstore_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

// newCartTestDB brings up an in-memory database with the shop schema. A single
// connection keeps every query on the same memory store.
func newCartTestDB(t *testing.T) *database.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqldb.SetMaxOpenConns(1)
	t.Cleanup(func() { sqldb.Close() })

	bundb := bun.NewDB(sqldb, sqlitedialect.New())
	ctx := context.Background()

	schema := []string{
		`CREATE TABLE plant (
			plant_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			type TEXT,
			price REAL NOT NULL,
			stock_quantity INTEGER NOT NULL,
			supplier_id INTEGER,
			category TEXT
		)`,
		`CREATE TABLE "order" (
			order_id INTEGER PRIMARY KEY AUTOINCREMENT,
			customer_id INTEGER NOT NULL,
			order_date TIMESTAMP NOT NULL,
			total_amount REAL NOT NULL,
			status TEXT NOT NULL
		)`,
		`CREATE TABLE order_items (
			order_item_id INTEGER PRIMARY KEY AUTOINCREMENT,
			order_id INTEGER NOT NULL,
			plant_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			price REAL NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := bundb.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return &database.DB{DB: bundb}
}

func newTestCartService(t *testing.T) (*CartService, *database.DB) {
	t.Helper()
	db := newCartTestDB(t)
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	return NewCartService(logger, nil, db), db
}

func seedPlant(t *testing.T, db *database.DB, name string, price float64, stock int64) int64 {
	t.Helper()
	plant := &tables.Plant{Name: name, Price: price, StockQuantity: stock}
	if _, err := db.NewInsert().Model(plant).Exec(context.Background()); err != nil {
		t.Fatalf("seed plant: %v", err)
	}
	return plant.PlantID
}

func orderTotal(t *testing.T, db *database.DB, orderID int64) float64 {
	t.Helper()
	var total float64
	err := db.NewSelect().
		Model((*tables.Order)(nil)).
		Column("total_amount").
		Where("order_id = ?", orderID).
		Scan(context.Background(), &total)
	if err != nil {
		t.Fatalf("read order total: %v", err)
	}
	return total
}

func TestAddToCartCreatesPendingOrder(t *testing.T) {
	cs, db := newTestCartService(t)
	ctx := context.Background()
	plantID := seedPlant(t, db, "Fern", 12.5, 5)

	result, err := cs.AddToCart(ctx, 1, nil, plantID, 1)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if !result.CreatedOrder {
		t.Error("first add did not report a created order")
	}

	var status string
	err = db.NewSelect().
		Model((*tables.Order)(nil)).
		Column("status").
		Where("order_id = ?", result.OrderID).
		Scan(ctx, &status)
	if err != nil {
		t.Fatalf("read order: %v", err)
	}
	if status != string(tables.OrderStatusPending) {
		t.Errorf("order status = %q, want %q", status, tables.OrderStatusPending)
	}

	item := &tables.OrderItem{}
	err = db.NewSelect().Model(item).Where("order_id = ?", result.OrderID).Scan(ctx)
	if err != nil {
		t.Fatalf("read order item: %v", err)
	}
	if item.Quantity != 1 || item.Price != 12.5 {
		t.Errorf("item = qty %d price %v, want qty 1 price 12.5", item.Quantity, item.Price)
	}
	if got := orderTotal(t, db, result.OrderID); got != 12.5 {
		t.Errorf("total = %v, want 12.5", got)
	}
}

func TestAddToCartRepeatAddsBumpOneLine(t *testing.T) {
	cs, db := newTestCartService(t)
	ctx := context.Background()
	plantID := seedPlant(t, db, "Fern", 10, 5)

	first, err := cs.AddToCart(ctx, 1, nil, plantID, 1)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}

	for i := 0; i < 2; i++ {
		result, err := cs.AddToCart(ctx, 1, &first.OrderID, plantID, 1)
		if err != nil {
			t.Fatalf("repeat add %d: %v", i+1, err)
		}
		if result.CreatedOrder || result.OrderID != first.OrderID {
			t.Fatalf("repeat add created order %d, want reuse of %d", result.OrderID, first.OrderID)
		}
	}

	count, err := db.NewSelect().
		Model((*tables.OrderItem)(nil)).
		Where("order_id = ?", first.OrderID).
		Count(ctx)
	if err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 1 {
		t.Fatalf("order has %d item rows, want 1", count)
	}

	item := &tables.OrderItem{}
	if err := db.NewSelect().Model(item).Where("order_id = ?", first.OrderID).Scan(ctx); err != nil {
		t.Fatalf("read item: %v", err)
	}
	if item.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", item.Quantity)
	}
	if got := orderTotal(t, db, first.OrderID); got != 30 {
		t.Errorf("total = %v, want 30 (3 x 10)", got)
	}
}

func TestAddToCartPriceSnapshotSurvivesRepricing(t *testing.T) {
	cs, db := newTestCartService(t)
	ctx := context.Background()
	plantID := seedPlant(t, db, "Fern", 10, 5)

	first, err := cs.AddToCart(ctx, 1, nil, plantID, 1)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}

	// Reprice the plant between adds; the line keeps the add-time price and
	// the total is computed from the snapshot, not the catalog.
	_, err = db.NewUpdate().
		Model((*tables.Plant)(nil)).
		Set("price = ?", 99.0).
		Where("plant_id = ?", plantID).
		Exec(ctx)
	if err != nil {
		t.Fatalf("reprice plant: %v", err)
	}

	if _, err := cs.AddToCart(ctx, 1, &first.OrderID, plantID, 1); err != nil {
		t.Fatalf("second add: %v", err)
	}

	item := &tables.OrderItem{}
	if err := db.NewSelect().Model(item).Where("order_id = ?", first.OrderID).Scan(ctx); err != nil {
		t.Fatalf("read item: %v", err)
	}
	if item.Price != 10 {
		t.Errorf("snapshot price = %v, want 10", item.Price)
	}
	if got := orderTotal(t, db, first.OrderID); got != 20 {
		t.Errorf("total = %v, want 20 (2 x snapshot 10)", got)
	}
}

func TestAddToCartOutOfStockLeavesStateUnchanged(t *testing.T) {
	cs, db := newTestCartService(t)
	ctx := context.Background()
	plantID := seedPlant(t, db, "Rare Orchid", 50, 1)

	_, err := cs.AddToCart(ctx, 1, nil, plantID, 2)
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("err = %v, want ErrOutOfStock", err)
	}

	orders, err := db.NewSelect().Model((*tables.Order)(nil)).Count(ctx)
	if err != nil {
		t.Fatalf("count orders: %v", err)
	}
	items, err := db.NewSelect().Model((*tables.OrderItem)(nil)).Count(ctx)
	if err != nil {
		t.Fatalf("count items: %v", err)
	}
	if orders != 0 || items != 0 {
		t.Fatalf("failed add left %d orders and %d items, want none", orders, items)
	}
}

func TestAddToCartMissingPlant(t *testing.T) {
	cs, _ := newTestCartService(t)

	_, err := cs.AddToCart(context.Background(), 1, nil, 404, 1)
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("err = %v, want ErrOutOfStock for a missing plant", err)
	}
}
