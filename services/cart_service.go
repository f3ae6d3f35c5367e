package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"plantstore_server/database"
	"plantstore_server/lib"
	"plantstore_server/structs"
	"plantstore_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
)

// ErrOutOfStock covers both a missing plant and insufficient stock; the shop
// page shows the same message for either.
var ErrOutOfStock = errors.New("plant out of stock or missing")

// CartService drives the per-session cart state machine keyed by the pending
// order ID. All three possible writes of one add-to-cart attempt (order
// create, item upsert, total update) happen in a single transaction.
type CartService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewCartService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *CartService {
	return &CartService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

// AddToCartResult reports which order now holds the item and whether it was
// created by this call (so the session can remember it).
type AddToCartResult struct {
	OrderID      int64
	CreatedOrder bool
}

// AddToCart puts quantity units of a plant into the customer's pending order,
// creating the order on first add. The stock check is against the plant's
// total stock column, not reserved-aware; concurrent carts can oversell.
func (cs *CartService) AddToCart(ctx context.Context, customerID int64, pendingOrderID *int64, plantID, quantity int64) (result *AddToCartResult, err error) {
	tx, err := cs.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		cs.logger.Error("Failed to begin cart transaction", gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic during add-to-cart: %v", p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	// 1. Plant price and stock. A missing plant reads as out of stock.
	plant := &tables.Plant{}
	err = tx.NewSelect().
		Model(plant).
		Column("plant_id", "price", "stock_quantity").
		Where("plant_id = ?", plantID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrOutOfStock
			return nil, err
		}
		err = lib.MapDBError(err)
		return nil, err
	}

	if plant.StockQuantity < quantity {
		err = ErrOutOfStock
		return nil, err
	}

	// 2. Find or create the pending order.
	createdOrder := false
	var orderID int64
	if pendingOrderID != nil {
		orderID = *pendingOrderID
	} else {
		order := &tables.Order{
			CustomerID:  customerID,
			OrderDate:   time.Now(),
			TotalAmount: 0,
			Status:      tables.OrderStatusPending,
		}
		_, err = tx.NewInsert().Model(order).Returning("order_id").Exec(ctx)
		if err != nil {
			err = lib.MapDBError(err)
			return nil, err
		}
		orderID = order.OrderID
		createdOrder = true
	}

	// 3. Upsert the line item. The price snapshot is written once on insert
	// and never touched again; repeat adds only bump the quantity.
	item := &tables.OrderItem{}
	err = tx.NewSelect().
		Model(item).
		Where("order_id = ?", orderID).
		Where("plant_id = ?", plantID).
		Scan(ctx)
	switch {
	case err == nil:
		_, err = tx.NewUpdate().
			Model((*tables.OrderItem)(nil)).
			Set("quantity = ?", item.Quantity+quantity).
			Where("order_id = ?", orderID).
			Where("plant_id = ?", plantID).
			Exec(ctx)
	case errors.Is(err, sql.ErrNoRows):
		newItem := &tables.OrderItem{
			OrderID:  orderID,
			PlantID:  plantID,
			Quantity: quantity,
			Price:    plant.Price,
		}
		_, err = tx.NewInsert().Model(newItem).Exec(ctx)
	}
	if err != nil {
		err = lib.MapDBError(err)
		return nil, err
	}

	// 4. Recompute the cached total as a full aggregate over the order's
	// items. Never incremented, so a retried request cannot drift it.
	_, err = tx.NewUpdate().
		Model((*tables.Order)(nil)).
		Set("total_amount = (SELECT COALESCE(SUM(oi.quantity * oi.price), 0) FROM order_items AS oi WHERE oi.order_id = ?)", orderID).
		Where("order_id = ?", orderID).
		Exec(ctx)
	if err != nil {
		err = lib.MapDBError(err)
		return nil, err
	}

	cs.logger.Debug("Item added to cart",
		gecho.Field("customer_id", customerID),
		gecho.Field("order_id", orderID),
		gecho.Field("plant_id", plantID),
	)

	return &AddToCartResult{OrderID: orderID, CreatedOrder: createdOrder}, nil
}
