// Package record implements the generic record store shared by every
// table-specific repository. It builds parameterized SQL with squirrel,
// scans rows with scany, filters writes through a fillable-column
// allow-list, and redacts hidden columns from every read.
package record

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/kdtech/site-backend/internal/adapter/postgres"
	"github.com/kdtech/site-backend/internal/domain"
)

// Fields is a column→value set for Create/Update calls. Columns outside
// the fillable allow-list are silently dropped, not rejected.
type Fields map[string]any

// Conditions is an exact-match AND conjunction. A slice value translates
// to an IN clause. An empty Conditions matches every row.
type Conditions map[string]any

// Config declares the table shape for a Store.
type Config struct {
	// Table is the table name.
	Table string
	// Entity names the stored entity in wrapped errors ("project", "order"...).
	Entity string
	// Columns is the full column list in schema order.
	Columns []string
	// Fillable is the allow-list of columns writable through Create/Update.
	Fillable []string
	// Hidden lists columns excluded from every SELECT.
	Hidden []string
}

// Store provides generic CRUD over a single table. T is the row type with
// db struct tags matching the selected columns.
type Store[T any] struct {
	db           postgres.Querier
	table        string
	entity       string
	cols         []string
	fillable     map[string]struct{}
	hasCreatedAt bool
	hasUpdatedAt bool
	now          func() time.Time
}

// Builder returns a squirrel statement builder with PostgreSQL placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// New creates a Store for the given table configuration.
func New[T any](db postgres.Querier, cfg Config) *Store[T] {
	cols := make([]string, 0, len(cfg.Columns))
	for _, c := range cfg.Columns {
		if !slices.Contains(cfg.Hidden, c) {
			cols = append(cols, c)
		}
	}

	fillable := make(map[string]struct{}, len(cfg.Fillable))
	for _, c := range cfg.Fillable {
		fillable[c] = struct{}{}
	}

	return &Store[T]{
		db:           db,
		table:        cfg.Table,
		entity:       cfg.Entity,
		cols:         cols,
		fillable:     fillable,
		hasCreatedAt: slices.Contains(cfg.Columns, "created_at"),
		hasUpdatedAt: slices.Contains(cfg.Columns, "updated_at"),
		now:          time.Now,
	}
}

// Table returns the configured table name.
func (s *Store[T]) Table() string { return s.table }

// Columns returns the visible (non-hidden) column list.
func (s *Store[T]) Columns() []string { return slices.Clone(s.cols) }

// SelectBuilder returns a SELECT of the visible columns from the table.
func (s *Store[T]) SelectBuilder() squirrel.SelectBuilder {
	return Builder().Select(s.cols...).From(s.table)
}

// Find returns the row with the given primary key.
// Returns domain.ErrNotFound when no such row exists.
func (s *Store[T]) Find(ctx context.Context, id int64) (*T, error) {
	query := s.SelectBuilder().Where(squirrel.Eq{"id": id}).Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build find: %w", s.entity, err)
	}

	var row T
	if err := pgxscan.Get(ctx, s.q(ctx), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, s.entity, id)
	}

	return &row, nil
}

// List returns rows matching conds, ordered by orderBy when non-empty,
// windowed by limit/offset when limit > 0. The orderBy string must come
// from repository constants, never from request input.
// Returns an empty slice (not nil) when nothing matches.
func (s *Store[T]) List(ctx context.Context, conds Conditions, orderBy string, limit, offset uint64) ([]T, error) {
	query := s.SelectBuilder()
	if len(conds) > 0 {
		query = query.Where(squirrel.Eq(conds))
	}
	if orderBy != "" {
		query = query.OrderBy(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build list: %w", s.entity, err)
	}

	rows := []T{}
	if err := pgxscan.Select(ctx, s.q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, s.entity, 0)
	}

	return rows, nil
}

// Create filters fields to the fillable set, stamps the timestamp columns
// the table has, inserts the row, and re-reads it so database-generated
// defaults are included in the result.
func (s *Store[T]) Create(ctx context.Context, fields Fields) (*T, error) {
	data := s.filterFillable(fields)
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", s.entity, domain.NewValidationError("fields", "no fillable fields provided"))
	}

	now := s.now()
	if s.hasCreatedAt {
		data["created_at"] = now
	}
	if s.hasUpdatedAt {
		data["updated_at"] = now
	}

	query := Builder().Insert(s.table).SetMap(data).Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build insert: %w", s.entity, err)
	}

	var id int64
	if err := s.q(ctx).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, s.entity, 0)
	}

	return s.Find(ctx, id)
}

// Update filters fields to the fillable set, stamps updated_at, updates by
// primary key, and returns the refreshed row.
// Returns domain.ErrNotFound when no row matched.
func (s *Store[T]) Update(ctx context.Context, id int64, fields Fields) (*T, error) {
	data := s.filterFillable(fields)
	if s.hasUpdatedAt {
		data["updated_at"] = s.now()
	}

	query := Builder().Update(s.table).SetMap(data).Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build update: %w", s.entity, err)
	}

	tag, err := s.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, s.entity, id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%s %d: %w", s.entity, id, domain.ErrNotFound)
	}

	return s.Find(ctx, id)
}

// Delete removes the row with the given primary key.
// Returns domain.ErrNotFound when no row matched.
func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	query := Builder().Delete(s.table).Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: build delete: %w", s.entity, err)
	}

	tag, err := s.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, s.entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", s.entity, id, domain.ErrNotFound)
	}

	return nil
}

// Count returns the number of rows matching conds, under the same condition
// semantics as List.
func (s *Store[T]) Count(ctx context.Context, conds Conditions) (int64, error) {
	query := Builder().Select("COUNT(*)").From(s.table)
	if len(conds) > 0 {
		query = query.Where(squirrel.Eq(conds))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: build count: %w", s.entity, err)
	}

	var count int64
	if err := s.q(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, s.entity, 0)
	}

	return count, nil
}

// Exists reports whether any row matches conds.
func (s *Store[T]) Exists(ctx context.Context, conds Conditions) (bool, error) {
	count, err := s.Count(ctx, conds)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Get scans a single row of a repository-specific query into dst.
func (s *Store[T]) Get(ctx context.Context, dst any, sql string, args ...any) error {
	if err := pgxscan.Get(ctx, s.q(ctx), dst, sql, args...); err != nil {
		return postgres.MapError(err, s.entity, 0)
	}
	return nil
}

// Select scans the rows of a repository-specific query into dst,
// a pointer to a slice.
func (s *Store[T]) Select(ctx context.Context, dst any, sql string, args ...any) error {
	if err := pgxscan.Select(ctx, s.q(ctx), dst, sql, args...); err != nil {
		return postgres.MapError(err, s.entity, 0)
	}
	return nil
}

// Exec runs a repository-specific statement and returns the affected row count.
func (s *Store[T]) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := s.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, s.entity, 0)
	}
	return tag.RowsAffected(), nil
}

// q resolves the active querier: the transaction from ctx if present,
// otherwise the store's own connection.
func (s *Store[T]) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, s.db)
}

// filterFillable copies fields, keeping only fillable columns.
func (s *Store[T]) filterFillable(fields Fields) Fields {
	out := make(Fields, len(fields))
	for k, v := range fields {
		if _, ok := s.fillable[k]; ok {
			out[k] = v
		}
	}
	return out
}
