package tables

import (
	"time"

	"github.com/uptrace/bun"
)

type OrderStatus string

const (
	// A pending order doubles as the in-progress shopping cart for a session.
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusFinalized OrderStatus = "Finalized"
)

type Order struct {
	bun.BaseModel `bun:"table:order,alias:o"`
	OrderID       int64     `json:"order_id" bun:"order_id,pk,autoincrement"`
	CustomerID    int64     `json:"customer_id" bun:"customer_id,notnull"`
	OrderDate     time.Time `json:"order_date" bun:"order_date,notnull,default:now()"`
	// Derived cache: always SUM(quantity * price) over the order's items
	// after a successful cart operation.
	TotalAmount float64     `json:"total_amount" bun:"total_amount,notnull"`
	Status      OrderStatus `json:"status" bun:"status,notnull,default:'Pending'"`
}

type OrderItem struct {
	bun.BaseModel `bun:"table:order_items,alias:oi"`
	OrderItemID   int64 `json:"order_item_id" bun:"order_item_id,pk,autoincrement"`
	OrderID       int64 `json:"order_id" bun:"order_id,notnull"`
	PlantID       int64 `json:"plant_id" bun:"plant_id,notnull"`
	Quantity      int64 `json:"quantity" bun:"quantity,notnull"`
	// Price snapshot taken at add-time, never rewritten afterwards; only the
	// quantity changes on repeat adds.
	Price float64 `json:"price" bun:"price,notnull"`
}
