package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Generic row access for the admin panel. Table and column identifiers MUST
// already have passed the policy allow-list before they reach this file; the
// allow-list is the security boundary, bun.Ident quoting is only hygiene.

// TableRows is a generic listing of one table. Headers come from the result
// set of the first row, so a table with zero rows yields empty headers.
type TableRows struct {
	Headers []string
	Rows    [][]string
}

// Record is one row fetched by primary key, with result-set column order
// preserved for form re-rendering.
type Record struct {
	Columns []string
	Values  map[string]string
}

// SelectAll returns every row of the table, retrying transient failures.
func (db *DB) SelectAll(ctx context.Context, table string) (*TableRows, error) {
	var out *TableRows

	err := WithRetry(ctx, func() error {
		rows, err := db.NewSelect().Table(table).Rows(ctx)
		if err != nil {
			return err
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return err
		}

		result := &TableRows{}
		for rows.Next() {
			vals := make([]any, len(cols))
			ptrs := make([]any, len(cols))
			for i := range vals {
				ptrs[i] = &vals[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				return err
			}

			if result.Headers == nil {
				result.Headers = cols
			}

			row := make([]string, len(vals))
			for i, v := range vals {
				row[i] = formatValue(v)
			}
			result.Rows = append(result.Rows, row)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		out = result
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list table %s: %w", table, err)
	}

	if out.Headers == nil {
		out.Headers = []string{}
	}
	return out, nil
}

// SelectByPK fetches a single row by primary key. Returns (nil, nil) when the
// row does not exist.
func (db *DB) SelectByPK(ctx context.Context, table, pkColumn string, id int64) (*Record, error) {
	var out *Record

	err := WithRetry(ctx, func() error {
		rows, err := db.NewSelect().
			Table(table).
			Where("? = ?", bun.Ident(pkColumn), id).
			Limit(1).
			Rows(ctx)
		if err != nil {
			return err
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return err
		}

		if !rows.Next() {
			out = nil
			return rows.Err()
		}

		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}

		rec := &Record{Columns: cols, Values: make(map[string]string, len(cols))}
		for i, col := range cols {
			rec.Values[col] = formatValue(vals[i])
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s %d: %w", table, id, err)
	}

	return out, nil
}

// InsertRow inserts one row of validated values. idb may be a transaction.
func InsertRow(ctx context.Context, idb bun.IDB, table string, columns []string, values []any) error {
	row := make(map[string]any, len(columns))
	for i, col := range columns {
		row[col] = values[i]
	}

	_, err := idb.NewInsert().
		Model(&row).
		TableExpr("?", bun.Ident(table)).
		Exec(ctx)
	return err
}

// UpdateRow updates one row by primary key and reports how many rows matched.
func UpdateRow(ctx context.Context, idb bun.IDB, table string, columns []string, values []any, pkColumn string, id int64) (int64, error) {
	q := idb.NewUpdate().Table(table)
	for i, col := range columns {
		q = q.Set("? = ?", bun.Ident(col), values[i])
	}

	res, err := q.Where("? = ?", bun.Ident(pkColumn), id).Exec(ctx)
	if err != nil {
		return 0, err
	}

	affected, _ := res.RowsAffected()
	return affected, nil
}

// formatValue renders a scanned SQL value for display and form re-rendering.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
