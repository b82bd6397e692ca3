// Package timeentries implements the time_entries repository.
package timeentries

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/database"
	"github.com/heartmarshall/casedesk/internal/database/repository/base"
	"github.com/heartmarshall/casedesk/internal/database/schema"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Filter narrows a time entry listing.
type Filter struct {
	CaseID  *uuid.UUID
	TodoID  *uuid.UUID
	Running *bool
	From    *time.Time
	To      *time.Time
}

var sortColumns = base.SortColumns{
	"start_time":       schema.TimeEntries.StartTime.Qualified(),
	"duration_seconds": schema.TimeEntries.DurationSeconds.Qualified(),
	"created_at":       schema.TimeEntries.CreatedAt.Qualified(),
}

var ownerColumn = schema.TimeEntries.OwnerActorID.Qualified()

// TimeEntryRepository provides time entry persistence.
type TimeEntryRepository struct {
	*base.Base[model.TimeEntry]
}

// NewTimeEntryRepository creates a new time entry repository.
func NewTimeEntryRepository(q database.Querier) *TimeEntryRepository {
	return &TimeEntryRepository{
		Base: base.MustNewBase[model.TimeEntry](q, base.Config{
			Table:   schema.TimeEntries.Name.String(),
			Columns: schema.TimeEntries.Columns(),
		}),
	}
}

// Get returns an entry visible to scope.
func (r *TimeEntryRepository) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.TimeEntry, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, schema.TimeEntries.ID.Qualified(), id, base.ScopeWhere(scope, ownerColumn)...)
}

// List returns one page of entries visible to scope, newest start first by default.
func (r *TimeEntryRepository) List(ctx context.Context, scope access.Scope, filter Filter, page model.PageRequest) (model.PageResult[model.TimeEntry], error) {
	query := scope.Apply(r.SelectBuilder(), ownerColumn)

	if filter.CaseID != nil {
		query = query.Where(squirrel.Eq{schema.TimeEntries.CaseID.Qualified(): *filter.CaseID})
	}
	if filter.TodoID != nil {
		query = query.Where(squirrel.Eq{schema.TimeEntries.TodoID.Qualified(): *filter.TodoID})
	}
	if filter.Running != nil {
		if *filter.Running {
			query = query.Where(squirrel.Eq{schema.TimeEntries.EndTime.Qualified(): nil})
		} else {
			query = query.Where(squirrel.NotEq{schema.TimeEntries.EndTime.Qualified(): nil})
		}
	}
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{schema.TimeEntries.StartTime.Qualified(): *filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.Lt{schema.TimeEntries.StartTime.Qualified(): *filter.To})
	}

	if page.SortBy == "" {
		page.SortDesc = true
	}
	return r.Page(ctx, query, page, sortColumns.OrderBy(page, schema.TimeEntries.StartTime.Qualified(), schema.TimeEntries.ID.Qualified())...)
}

// Create inserts an entry.
func (r *TimeEntryRepository) Create(ctx context.Context, e *model.TimeEntry) (*model.TimeEntry, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: time entry is required", database.ErrInvalidInput)
	}
	if err := base.ValidateUUID(e.OwnerActorID, "owner_actor_id"); err != nil {
		return nil, err
	}

	insert := r.InsertBuilder().
		Columns(schema.TimeEntries.InsertColumns()...).
		Values(e.OwnerActorID, e.CaseID, e.TodoID, e.StartTime, e.EndTime, e.DurationSeconds, e.Note)

	return r.InsertReturning(ctx, insert)
}

// Update overwrites the mutable fields of an entry visible to scope.
// Owner and parent never change.
func (r *TimeEntryRepository) Update(ctx context.Context, id uuid.UUID, e *model.TimeEntry, scope access.Scope) (*model.TimeEntry, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: time entry is required", database.ErrInvalidInput)
	}

	update := r.UpdateBuilder().
		Set(schema.TimeEntries.StartTime.Bare(), e.StartTime).
		Set(schema.TimeEntries.EndTime.Bare(), e.EndTime).
		Set(schema.TimeEntries.DurationSeconds.Bare(), e.DurationSeconds).
		Set(schema.TimeEntries.Note.Bare(), e.Note).
		Where(squirrel.Eq{schema.TimeEntries.ID.Qualified(): id})
	for _, pred := range base.ScopeWhere(scope, ownerColumn) {
		update = update.Where(pred)
	}

	return r.Base.Update(ctx, update)
}

// Delete removes an entry visible to scope.
func (r *TimeEntryRepository) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return err
	}
	return r.Base.Delete(ctx, schema.TimeEntries.ID.Qualified(), id, base.ScopeWhere(scope, ownerColumn)...)
}
