// Package base provides the generic table repository every entity repository embeds.
package base

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/database"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Builder returns a squirrel statement builder using PostgreSQL placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Config describes the table a Base operates on.
type Config struct {
	Table   string
	Columns []string
}

// Base implements the select/insert/update/delete plumbing shared by repositories.
type Base[T any] struct {
	q         database.Querier
	table     string
	columns   []string
	returning string
}

// NewBase creates a Base for T.
func NewBase[T any](q database.Querier, cfg Config) (*Base[T], error) {
	if q == nil {
		return nil, fmt.Errorf("%w: querier is required", database.ErrInvalidInput)
	}
	if cfg.Table == "" {
		return nil, fmt.Errorf("%w: table is required", database.ErrInvalidInput)
	}
	if len(cfg.Columns) == 0 {
		return nil, fmt.Errorf("%w: columns are required for %s", database.ErrInvalidInput, cfg.Table)
	}
	return &Base[T]{
		q:         q,
		table:     cfg.Table,
		columns:   cfg.Columns,
		returning: "RETURNING " + strings.Join(cfg.Columns, ", "),
	}, nil
}

// MustNewBase is NewBase that panics on misconfiguration.
func MustNewBase[T any](q database.Querier, cfg Config) *Base[T] {
	b, err := NewBase[T](q, cfg)
	if err != nil {
		panic(err)
	}
	return b
}

// Q returns the underlying querier.
func (b *Base[T]) Q() database.Querier { return b.q }

// Table returns the table name.
func (b *Base[T]) Table() string { return b.table }

// SelectBuilder starts a SELECT of all configured columns.
func (b *Base[T]) SelectBuilder() squirrel.SelectBuilder {
	return Builder().Select(b.columns...).From(b.table)
}

// InsertBuilder starts an INSERT into the table.
func (b *Base[T]) InsertBuilder() squirrel.InsertBuilder {
	return Builder().Insert(b.table)
}

// UpdateBuilder starts an UPDATE of the table.
func (b *Base[T]) UpdateBuilder() squirrel.UpdateBuilder {
	return Builder().Update(b.table)
}

// DeleteBuilder starts a DELETE from the table.
func (b *Base[T]) DeleteBuilder() squirrel.DeleteBuilder {
	return Builder().Delete(b.table)
}

// Get runs query and scans exactly one row. No rows yields database.ErrNotFound.
func (b *Base[T]) Get(ctx context.Context, query squirrel.Sqlizer) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst T
	if err := pgxscan.Get(ctx, b.q, &dst, sql, args...); err != nil {
		return nil, database.WrapDBError(err)
	}
	return &dst, nil
}

// GetByID fetches one row by its id column. extra predicates are ANDed in.
func (b *Base[T]) GetByID(ctx context.Context, idColumn string, id uuid.UUID, extra ...squirrel.Sqlizer) (*T, error) {
	query := b.SelectBuilder().Where(squirrel.Eq{idColumn: id})
	for _, pred := range extra {
		query = query.Where(pred)
	}
	return b.Get(ctx, query)
}

// List runs query and scans every row. An empty result is an empty slice.
func (b *Base[T]) List(ctx context.Context, query squirrel.Sqlizer) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	dst := make([]T, 0)
	if err := pgxscan.Select(ctx, b.q, &dst, sql, args...); err != nil {
		return nil, database.WrapDBError(err)
	}
	return dst, nil
}

// ListByUUIDs returns the rows whose column value is in ids.
func (b *Base[T]) ListByUUIDs(ctx context.Context, column string, ids []uuid.UUID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	return b.List(ctx, b.SelectBuilder().Where(squirrel.Eq{column: ids}))
}

// Count returns the number of rows query would produce.
func (b *Base[T]) Count(ctx context.Context, query squirrel.SelectBuilder) (int, error) {
	countQuery := Builder().Select("COUNT(*)").FromSelect(query.RemoveLimit().RemoveOffset(), "counted")

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := b.q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, database.WrapDBError(err)
	}
	return n, nil
}

// Page counts all rows matching query, then fetches one page ordered by orderBy.
func (b *Base[T]) Page(ctx context.Context, query squirrel.SelectBuilder, page model.PageRequest, orderBy ...string) (model.PageResult[T], error) {
	page = page.Normalize()

	total, err := b.Count(ctx, query)
	if err != nil {
		return model.PageResult[T]{}, err
	}
	if total == 0 {
		return model.PageResult[T]{Rows: []T{}, TotalCount: 0}, nil
	}

	rows, err := b.List(ctx, query.
		OrderBy(orderBy...).
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset())))
	if err != nil {
		return model.PageResult[T]{}, err
	}

	return model.PageResult[T]{Rows: rows, TotalCount: total}, nil
}

// InsertReturning executes insert and scans the created row.
func (b *Base[T]) InsertReturning(ctx context.Context, insert squirrel.InsertBuilder) (*T, error) {
	return b.Get(ctx, insert.Suffix(b.returning))
}

// Update executes update and scans the updated row. No matching row yields
// database.ErrNotFound.
func (b *Base[T]) Update(ctx context.Context, update squirrel.UpdateBuilder) (*T, error) {
	return b.Get(ctx, update.Suffix(b.returning))
}

// Delete removes the row with the given id. No matching row yields database.ErrNotFound.
func (b *Base[T]) Delete(ctx context.Context, idColumn string, id uuid.UUID, extra ...squirrel.Sqlizer) error {
	del := b.DeleteBuilder().Where(squirrel.Eq{idColumn: id})
	for _, pred := range extra {
		del = del.Where(pred)
	}

	sql, args, err := del.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := b.q.Exec(ctx, sql, args...)
	if err != nil {
		return database.WrapDBError(err)
	}
	if tag.RowsAffected() == 0 {
		return database.ErrNotFound
	}
	return nil
}

// Exists reports whether any row of the table matches where.
func (b *Base[T]) Exists(ctx context.Context, where squirrel.Sqlizer) (bool, error) {
	return Exists(ctx, b.q, b.table, where)
}

// QueryRaw scans the result of a hand-built statement into dst (pointer to a
// slice or struct).
func (b *Base[T]) QueryRaw(ctx context.Context, dst any, sql string, args ...any) error {
	if err := pgxscan.Select(ctx, b.q, dst, sql, args...); err != nil {
		return database.WrapDBError(err)
	}
	return nil
}

// Exists reports whether any row of table matches where.
func Exists(ctx context.Context, q database.Querier, table string, where squirrel.Sqlizer) (bool, error) {
	inner := Builder().Select("1").From(table).Where(where).Limit(1)
	query := Builder().Select().Column(squirrel.Expr("EXISTS(?)", inner))

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		if errors.Is(database.WrapDBError(err), database.ErrNotFound) {
			return false, nil
		}
		return false, database.WrapDBError(err)
	}
	return exists, nil
}

// SortColumns maps public sort keys to qualified columns.
type SortColumns map[string]string

// OrderBy resolves page's sort key against cols, falling back to def, and
// appends idColumn as a stable tie-breaker.
func (cols SortColumns) OrderBy(page model.PageRequest, def, idColumn string) []string {
	col, ok := cols[page.SortBy]
	if !ok {
		col = def
	}
	dir := " ASC"
	if page.SortDesc {
		dir = " DESC"
	}
	return []string{col + dir, idColumn + " ASC"}
}

// ScopeWhere returns scope's predicate over ownerColumns as extra WHERE
// clauses; unrestricted scopes yield none.
func ScopeWhere(scope access.Scope, ownerColumns ...string) []squirrel.Sqlizer {
	if pred := scope.Predicate(ownerColumns...); pred != nil {
		return []squirrel.Sqlizer{pred}
	}
	return nil
}
