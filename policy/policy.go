// Package policy holds the static per-table allow-list that gates every admin
// CRUD operation. The allow-list is the security boundary for table and column
// identifiers: nothing user-supplied reaches query text without passing it.
package policy

// TableRule describes what the admin panel may do with one table. Schema is
// the ordered list of editable columns; a nil Schema means the table can be
// listed but not edited.
type TableRule struct {
	Schema     []string
	PrimaryKey string
}

// Policy is the immutable table access configuration. It is constructed once
// at startup and injected; never rebuilt per request.
type Policy struct {
	tables []string // listable, in display order
	rules  map[string]TableRule
}

// Default returns the allow-list for the plant store schema. `order` and
// `order_items` are listable but carry no editable schema.
func Default() *Policy {
	return &Policy{
		tables: []string{"plant", "customer", "supplier", "order", "order_items"},
		rules: map[string]TableRule{
			"plant": {
				Schema:     []string{"name", "type", "price", "stock_quantity", "supplier_id", "category"},
				PrimaryKey: "plant_id",
			},
			"customer": {
				Schema:     []string{"name", "email", "phone", "address"},
				PrimaryKey: "customer_id",
			},
			"supplier": {
				Schema:     []string{"name", "contact_name", "phone", "email"},
				PrimaryKey: "supplier_id",
			},
			"order":       {PrimaryKey: "order_id"},
			"order_items": {PrimaryKey: "order_item_id"},
		},
	}
}

// ListableTables returns the allow-listed tables in display order.
func (p *Policy) ListableTables() []string {
	out := make([]string, len(p.tables))
	copy(out, p.tables)
	return out
}

func (p *Policy) IsListable(table string) bool {
	_, ok := p.rules[table]
	return ok
}

// IsEditable reports whether the table has an editable schema and a known
// primary key, i.e. whether add/edit forms exist for it.
func (p *Policy) IsEditable(table string) bool {
	rule, ok := p.rules[table]
	return ok && len(rule.Schema) > 0 && rule.PrimaryKey != ""
}

// Schema returns the ordered editable column list, or nil when the table is
// not editable.
func (p *Policy) Schema(table string) []string {
	rule, ok := p.rules[table]
	if !ok || len(rule.Schema) == 0 {
		return nil
	}
	out := make([]string, len(rule.Schema))
	copy(out, rule.Schema)
	return out
}

// PrimaryKey returns the primary key column name, or "" when unknown.
func (p *Policy) PrimaryKey(table string) string {
	return p.rules[table].PrimaryKey
}

// HasColumn reports whether column is part of the table's editable schema.
func (p *Policy) HasColumn(table, column string) bool {
	for _, col := range p.rules[table].Schema {
		if col == column {
			return true
		}
	}
	return false
}
