// Package audit implements the append-only audit_log repository.
// It exposes no update or delete path.
package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/database"
	"github.com/heartmarshall/casedesk/internal/database/repository/base"
	"github.com/heartmarshall/casedesk/internal/database/schema"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Filter narrows an audit query. Zero fields are ignored.
type Filter struct {
	Table     string
	Operation model.AuditOperation
	ActorID   *uuid.UUID
	RecordID  *uuid.UUID
	Search    string
	From      *time.Time
	To        *time.Time
}

// IsEmpty reports whether no filter field is set.
func (f Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Table) == "" &&
		f.Operation == "" &&
		f.ActorID == nil &&
		f.RecordID == nil &&
		strings.TrimSpace(f.Search) == "" &&
		f.From == nil &&
		f.To == nil
}

// Bucket is one row of a grouped count.
type Bucket struct {
	Key   string `db:"key" json:"key"`
	Count int    `db:"count" json:"count"`
}

// AuditRepository provides audit_log persistence.
type AuditRepository struct {
	*base.Base[model.AuditEntry]
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(q database.Querier) *AuditRepository {
	return &AuditRepository{
		Base: base.MustNewBase[model.AuditEntry](q, base.Config{
			Table:   schema.AuditLog.Name.String(),
			Columns: schema.AuditLog.Columns(),
		}),
	}
}

// Create appends an audit entry.
func (r *AuditRepository) Create(ctx context.Context, entry *model.AuditEntry) (*model.AuditEntry, error) {
	if entry == nil {
		return nil, fmt.Errorf("%w: audit entry is required", database.ErrInvalidInput)
	}
	if err := base.ValidateString(entry.TableName, "table_name"); err != nil {
		return nil, err
	}
	if !entry.Operation.IsValid() {
		return nil, fmt.Errorf("%w: operation %q", database.ErrInvalidInput, entry.Operation)
	}

	insert := r.InsertBuilder().
		Columns(schema.AuditLog.InsertColumns()...).
		Values(entry.TableName, entry.Operation, entry.RecordID, entry.ActorID, entry.Before, entry.After, entry.Description)

	return r.InsertReturning(ctx, insert)
}

// Query returns one page of entries visible to scope, newest first.
func (r *AuditRepository) Query(ctx context.Context, scope access.Scope, filter Filter, page model.PageRequest) (model.PageResult[model.AuditEntry], error) {
	query := r.filtered(r.SelectBuilder(), scope, filter)
	return r.Page(ctx, query, page, schema.AuditLog.CreatedAt.Qualified()+" DESC", schema.AuditLog.ID.Qualified()+" DESC")
}

// ListForExport returns up to limit entries visible to scope, newest first.
func (r *AuditRepository) ListForExport(ctx context.Context, scope access.Scope, filter Filter, limit int) ([]model.AuditEntry, error) {
	query := r.filtered(r.SelectBuilder(), scope, filter).
		OrderBy(schema.AuditLog.CreatedAt.Qualified() + " DESC").
		Limit(uint64(limit))
	return r.List(ctx, query)
}

// CountSince counts entries visible to scope created at or after since.
// A zero since counts everything.
func (r *AuditRepository) CountSince(ctx context.Context, scope access.Scope, since time.Time) (int, error) {
	query := r.scoped(base.Builder().Select(schema.AuditLog.ID.Qualified()).From(schema.AuditLog.Name.String()), scope)
	if !since.IsZero() {
		query = query.Where(squirrel.GtOrEq{schema.AuditLog.CreatedAt.Qualified(): since})
	}
	return r.Count(ctx, query)
}

// CountActors counts distinct actors among entries visible to scope.
func (r *AuditRepository) CountActors(ctx context.Context, scope access.Scope) (int, error) {
	query := r.scoped(base.Builder().
		Select("COUNT(DISTINCT " + schema.AuditLog.ActorID.Qualified() + ")").
		From(schema.AuditLog.Name.String()), scope)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count actors: %w", err)
	}

	var n int
	if err := r.Q().QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, database.WrapDBError(err)
	}
	return n, nil
}

// TopActions groups visible entries since the given time by "table:operation".
func (r *AuditRepository) TopActions(ctx context.Context, scope access.Scope, since time.Time, limit int) ([]Bucket, error) {
	key := schema.AuditLog.TableName.Qualified() + " || ':' || " + schema.AuditLog.Operation.Qualified()
	return r.top(ctx, scope, key, since, limit)
}

// TopActors groups visible entries since the given time by actor id.
func (r *AuditRepository) TopActors(ctx context.Context, scope access.Scope, since time.Time, limit int) ([]Bucket, error) {
	return r.top(ctx, scope, schema.AuditLog.ActorID.Qualified()+"::text", since, limit)
}

func (r *AuditRepository) top(ctx context.Context, scope access.Scope, keyExpr string, since time.Time, limit int) ([]Bucket, error) {
	query := r.scoped(base.Builder().
		Select(keyExpr+" AS key", "COUNT(*) AS count").
		From(schema.AuditLog.Name.String()).
		Where(squirrel.NotEq{schema.AuditLog.ActorID.Qualified(): nil}), scope)
	if !since.IsZero() {
		query = query.Where(squirrel.GtOrEq{schema.AuditLog.CreatedAt.Qualified(): since})
	}
	query = query.GroupBy("key").OrderBy("count DESC", "key ASC").Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build top query: %w", err)
	}

	buckets := make([]Bucket, 0, limit)
	if err := r.QueryRaw(ctx, &buckets, sql, args...); err != nil {
		return nil, err
	}
	return buckets, nil
}

// EstimatedRows returns the planner's row estimate for audit_log. It reads
// pg_class, which is visible regardless of row-level policies on the table.
// A table that was never analyzed reports -1.
func (r *AuditRepository) EstimatedRows(ctx context.Context) (int64, error) {
	sql, args, err := base.Builder().
		Select("reltuples::bigint").
		From("pg_class").
		Where(squirrel.Eq{"relname": schema.AuditLog.Name.String()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build estimate query: %w", err)
	}

	var n int64
	if err := r.Q().QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, database.WrapDBError(err)
	}
	return n, nil
}

func (r *AuditRepository) scoped(q squirrel.SelectBuilder, scope access.Scope) squirrel.SelectBuilder {
	return scope.Apply(q, schema.AuditLog.ActorID.Qualified())
}

func (r *AuditRepository) filtered(q squirrel.SelectBuilder, scope access.Scope, f Filter) squirrel.SelectBuilder {
	q = r.scoped(q, scope)

	if t := strings.TrimSpace(f.Table); t != "" {
		q = q.Where(squirrel.Eq{schema.AuditLog.TableName.Qualified(): t})
	}
	if f.Operation != "" {
		q = q.Where(squirrel.Eq{schema.AuditLog.Operation.Qualified(): f.Operation})
	}
	if f.ActorID != nil {
		q = q.Where(squirrel.Eq{schema.AuditLog.ActorID.Qualified(): *f.ActorID})
	}
	if f.RecordID != nil {
		q = q.Where(squirrel.Eq{schema.AuditLog.RecordID.Qualified(): *f.RecordID})
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q = q.Where(base.ILikeAny(s,
			schema.AuditLog.Description.Qualified(),
			schema.AuditLog.TableName.Qualified(),
			schema.AuditLog.RecordID.Qualified()+"::text",
		))
	}
	if f.From != nil && !f.From.IsZero() {
		q = q.Where(squirrel.GtOrEq{schema.AuditLog.CreatedAt.Qualified(): *f.From})
	}
	if f.To != nil && !f.To.IsZero() {
		q = q.Where(squirrel.LtOrEq{schema.AuditLog.CreatedAt.Qualified(): *f.To})
	}
	return q
}
