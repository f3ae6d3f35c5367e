package services

import (
	"context"
	"database/sql"
	"net/url"
	"plantstore_server/database"
	"plantstore_server/lib"
	"plantstore_server/policy"
	"strconv"
	"strings"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
)

// numericColumns is the fixed set of columns parsed as numbers. A value
// containing a dot parses as float, anything else as integer.
var numericColumns = map[string]bool{
	"price":          true,
	"stock_quantity": true,
}

// AdminService is the generic table-driven CRUD executor. Every operation
// fails closed against the injected policy before any identifier reaches
// query text.
type AdminService struct {
	logger *gecho.Logger
	db     *database.DB
	policy *policy.Policy
}

func NewAdminService(logger *gecho.Logger, db *database.DB, pol *policy.Policy) *AdminService {
	return &AdminService{
		logger: logger,
		db:     db,
		policy: pol,
	}
}

// Tables returns the listable tables for the admin index page.
func (s *AdminService) Tables() []string {
	return s.policy.ListableTables()
}

// ListTable returns all rows of an allow-listed table. A table with zero rows
// yields empty headers.
func (s *AdminService) ListTable(ctx context.Context, table string) (*database.TableRows, error) {
	if !s.policy.IsListable(table) {
		return nil, lib.ErrNotFound
	}
	return s.db.SelectAll(ctx, table)
}

// ParseFormValues validates raw form input against the table's schema: every
// schema column must be present, unknown columns are rejected, numeric
// columns parse float-if-dot else integer, strings are trimmed. The returned
// values are ordered by schema.
func (s *AdminService) ParseFormValues(table string, form url.Values) ([]string, []any, error) {
	schema := s.policy.Schema(table)
	if schema == nil {
		return nil, nil, lib.ErrNotFound
	}

	for key := range form {
		if !s.policy.HasColumn(table, key) {
			return nil, nil, &lib.ValidationError{Field: key, Reason: "unknown column"}
		}
	}

	values := make([]any, 0, len(schema))
	for _, column := range schema {
		parsed, err := parseColumnValue(column, form.Get(column))
		if err != nil {
			return nil, nil, err
		}
		values = append(values, parsed)
	}

	return schema, values, nil
}

func parseColumnValue(column, raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)

	if !numericColumns[column] {
		return trimmed, nil
	}

	if strings.Contains(trimmed, ".") {
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, &lib.ValidationError{Field: column, Reason: "must be a valid number"}
		}
		return f, nil
	}

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return nil, &lib.ValidationError{Field: column, Reason: "must be a valid number"}
	}
	return n, nil
}

// InsertRow validates and inserts one row. A validation failure aborts before
// anything is written; a database failure rolls the transaction back.
func (s *AdminService) InsertRow(ctx context.Context, table string, form url.Values) error {
	if !s.policy.IsEditable(table) {
		return lib.ErrNotFound
	}

	columns, values, err := s.ParseFormValues(table, form)
	if err != nil {
		return err
	}

	err = s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return database.InsertRow(ctx, tx, table, columns, values)
	})
	if err != nil {
		mapped := lib.MapDBError(err)
		s.logger.Error("Insert failed",
			gecho.Field("error", mapped),
			gecho.Field("table", table),
		)
		return mapped
	}

	s.logger.Debug("Row inserted", gecho.Field("table", table))
	return nil
}

// FetchRecord loads one row by primary key for the edit form. A missing row
// is lib.ErrNotFound, terminal for the request.
func (s *AdminService) FetchRecord(ctx context.Context, table string, id int64) (*database.Record, error) {
	pk := s.policy.PrimaryKey(table)
	if !s.policy.IsEditable(table) || pk == "" {
		return nil, lib.ErrNotFound
	}

	record, err := s.db.SelectByPK(ctx, table, pk, id)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if record == nil {
		return nil, lib.ErrNotFound
	}
	return record, nil
}

// UpdateRow validates and applies an update by primary key.
func (s *AdminService) UpdateRow(ctx context.Context, table string, id int64, form url.Values) error {
	pk := s.policy.PrimaryKey(table)
	if !s.policy.IsEditable(table) || pk == "" {
		return lib.ErrNotFound
	}

	columns, values, err := s.ParseFormValues(table, form)
	if err != nil {
		return err
	}

	var affected int64
	err = s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		affected, txErr = database.UpdateRow(ctx, tx, table, columns, values, pk, id)
		return txErr
	})
	if err != nil {
		mapped := lib.MapDBError(err)
		s.logger.Error("Update failed",
			gecho.Field("error", mapped),
			gecho.Field("table", table),
			gecho.Field("id", id),
		)
		return mapped
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	s.logger.Debug("Row updated",
		gecho.Field("table", table),
		gecho.Field("id", id),
	)
	return nil
}
