package tables

import "github.com/uptrace/bun"

type Customer struct {
	bun.BaseModel `bun:"table:customer,alias:c"`
	CustomerID    int64  `json:"customer_id" bun:"customer_id,pk,autoincrement"`
	Name          string `json:"name" bun:"name,notnull"`
	Email         string `json:"email" bun:"email,unique,notnull"`
	Phone         string `json:"phone" bun:"phone"`
	Address       string `json:"address" bun:"address"`
	PasswordHash  string `json:"-" bun:"password_hash,notnull"`
	Role          string `json:"role" bun:"role,notnull,default:'customer'"`
}
