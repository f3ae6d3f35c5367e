package tables

import "github.com/uptrace/bun"

type Plant struct {
	bun.BaseModel `bun:"table:plant,alias:p"`
	PlantID       int64   `json:"plant_id" bun:"plant_id,pk,autoincrement"`
	Name          string  `json:"name" bun:"name,notnull"`
	Type          string  `json:"type" bun:"type"`
	Price         float64 `json:"price" bun:"price,notnull"`
	StockQuantity int64   `json:"stock_quantity" bun:"stock_quantity,notnull"`
	SupplierID    int64   `json:"supplier_id" bun:"supplier_id"`
	Category      string  `json:"category" bun:"category"`
}

type Supplier struct {
	bun.BaseModel `bun:"table:supplier,alias:s"`
	SupplierID    int64  `json:"supplier_id" bun:"supplier_id,pk,autoincrement"`
	Name          string `json:"name" bun:"name,notnull"`
	ContactName   string `json:"contact_name" bun:"contact_name"`
	Phone         string `json:"phone" bun:"phone"`
	Email         string `json:"email" bun:"email"`
}
