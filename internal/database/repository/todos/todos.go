// Package todos implements the todo_records repository.
package todos

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/database"
	"github.com/heartmarshall/casedesk/internal/database/repository/base"
	"github.com/heartmarshall/casedesk/internal/database/schema"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Filter narrows a todo listing.
type Filter struct {
	Search     string
	Status     model.TodoStatus
	CaseID     *uuid.UUID
	PriorityID *uuid.UUID
	AssignedTo *uuid.UUID
}

var sortColumns = base.SortColumns{
	"title":      schema.TodoRecords.Title.Qualified(),
	"status":     schema.TodoRecords.Status.Qualified(),
	"due_at":     schema.TodoRecords.DueAt.Qualified(),
	"created_at": schema.TodoRecords.CreatedAt.Qualified(),
}

// ownerColumns grant visibility of a todo: its assignee or its creator.
var ownerColumns = []string{
	schema.TodoRecords.AssignedToActorID.Qualified(),
	schema.TodoRecords.CreatedByActorID.Qualified(),
}

// TodoRepository provides todo persistence.
type TodoRepository struct {
	*base.Base[model.TodoRecord]
}

// NewTodoRepository creates a new todo repository.
func NewTodoRepository(q database.Querier) *TodoRepository {
	return &TodoRepository{
		Base: base.MustNewBase[model.TodoRecord](q, base.Config{
			Table:   schema.TodoRecords.Name.String(),
			Columns: schema.TodoRecords.Columns(),
		}),
	}
}

// Get returns a todo visible to scope.
func (r *TodoRepository) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.TodoRecord, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, schema.TodoRecords.ID.Qualified(), id, base.ScopeWhere(scope, ownerColumns...)...)
}

// List returns one page of todos visible to scope.
func (r *TodoRepository) List(ctx context.Context, scope access.Scope, filter Filter, page model.PageRequest) (model.PageResult[model.TodoRecord], error) {
	query := scope.Apply(r.SelectBuilder(), ownerColumns...)

	if s := strings.TrimSpace(filter.Search); s != "" {
		query = query.Where(base.ILikeAny(s, schema.TodoRecords.Title.Qualified()))
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{schema.TodoRecords.Status.Qualified(): filter.Status})
	}
	if filter.CaseID != nil {
		query = query.Where(squirrel.Eq{schema.TodoRecords.CaseID.Qualified(): *filter.CaseID})
	}
	if filter.PriorityID != nil {
		query = query.Where(squirrel.Eq{schema.TodoRecords.PriorityID.Qualified(): *filter.PriorityID})
	}
	if filter.AssignedTo != nil {
		query = query.Where(squirrel.Eq{schema.TodoRecords.AssignedToActorID.Qualified(): *filter.AssignedTo})
	}

	return r.Page(ctx, query, page, sortColumns.OrderBy(page, schema.TodoRecords.CreatedAt.Qualified(), schema.TodoRecords.ID.Qualified())...)
}

// Create inserts a todo.
func (r *TodoRepository) Create(ctx context.Context, t *model.TodoRecord) (*model.TodoRecord, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: todo is required", database.ErrInvalidInput)
	}
	if err := base.ValidateString(t.Title, "title"); err != nil {
		return nil, err
	}
	if err := base.ValidateUUID(t.CreatedByActorID, "created_by_actor_id"); err != nil {
		return nil, err
	}

	insert := r.InsertBuilder().
		Columns(schema.TodoRecords.InsertColumns()...).
		Values(t.Title, t.Description, t.PriorityID, t.AssignedToActorID, t.CreatedByActorID,
			t.CaseID, t.Status, t.DueAt)

	return r.InsertReturning(ctx, insert)
}

// Update overwrites the mutable fields of a todo visible to scope.
// The creator never changes.
func (r *TodoRepository) Update(ctx context.Context, id uuid.UUID, t *model.TodoRecord, scope access.Scope) (*model.TodoRecord, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: todo is required", database.ErrInvalidInput)
	}

	update := r.UpdateBuilder().
		Set(schema.TodoRecords.Title.Bare(), t.Title).
		Set(schema.TodoRecords.Description.Bare(), t.Description).
		Set(schema.TodoRecords.PriorityID.Bare(), t.PriorityID).
		Set(schema.TodoRecords.AssignedToActorID.Bare(), t.AssignedToActorID).
		Set(schema.TodoRecords.CaseID.Bare(), t.CaseID).
		Set(schema.TodoRecords.Status.Bare(), t.Status).
		Set(schema.TodoRecords.DueAt.Bare(), t.DueAt).
		Set(schema.TodoRecords.UpdatedAt.Bare(), squirrel.Expr("now()")).
		Where(squirrel.Eq{schema.TodoRecords.ID.Qualified(): id})
	for _, pred := range base.ScopeWhere(scope, ownerColumns...) {
		update = update.Where(pred)
	}

	return r.Base.Update(ctx, update)
}

// Delete removes a todo visible to scope.
func (r *TodoRepository) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return err
	}
	return r.Base.Delete(ctx, schema.TodoRecords.ID.Qualified(), id, base.ScopeWhere(scope, ownerColumns...)...)
}
