// Package actors implements the actors repository.
package actors

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

// Filter narrows an actor listing.
type Filter struct {
	Search   string
	RoleID   *uuid.UUID
	IsActive *bool
}

var sortColumns = base.SortColumns{
	"email":        schema.Actors.Email.Qualified(),
	"display_name": schema.Actors.DisplayName.Qualified(),
	"created_at":   schema.Actors.CreatedAt.Qualified(),
}

// ActorRepository provides actor persistence.
type ActorRepository struct {
	*base.Base[model.Actor]
}

// NewActorRepository creates a new actor repository.
func NewActorRepository(q database.Querier) *ActorRepository {
	return &ActorRepository{
		Base: base.MustNewBase[model.Actor](q, base.Config{
			Table:   schema.Actors.Name.String(),
			Columns: schema.Actors.Columns(),
		}),
	}
}

// GetByID returns an actor regardless of scope. Used by session validation.
func (r *ActorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Actor, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	return r.Base.GetByID(ctx, schema.Actors.ID.Qualified(), id)
}

// GetByEmail looks an actor up by email, case-insensitively.
func (r *ActorRepository) GetByEmail(ctx context.Context, email string) (*model.Actor, error) {
	if err := base.ValidateString(email, "email"); err != nil {
		return nil, err
	}
	query := r.SelectBuilder().
		Where(squirrel.Expr("lower("+schema.Actors.Email.Qualified()+") = lower(?)", strings.TrimSpace(email)))
	return r.Base.Get(ctx, query)
}

// Get returns an actor visible to scope. A non-admin only sees itself.
func (r *ActorRepository) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.Actor, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	return r.Base.GetByID(ctx, schema.Actors.ID.Qualified(), id, scopeWhere(scope)...)
}

// List returns one page of actors visible to scope.
func (r *ActorRepository) List(ctx context.Context, scope access.Scope, filter Filter, page model.PageRequest) (model.PageResult[model.Actor], error) {
	query := scope.Apply(r.SelectBuilder(), schema.Actors.ID.Qualified())

	if s := strings.TrimSpace(filter.Search); s != "" {
		query = query.Where(base.ILikeAny(s, schema.Actors.Email.Qualified(), schema.Actors.DisplayName.Qualified()))
	}
	if filter.RoleID != nil {
		query = query.Where(squirrel.Eq{schema.Actors.RoleID.Qualified(): *filter.RoleID})
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{schema.Actors.IsActive.Qualified(): *filter.IsActive})
	}

	return r.Page(ctx, query, page, sortColumns.OrderBy(page, schema.Actors.Email.Qualified(), schema.Actors.ID.Qualified())...)
}

// Create inserts an actor. PasswordHash must already be hashed.
func (r *ActorRepository) Create(ctx context.Context, actor *model.Actor) (*model.Actor, error) {
	if actor == nil {
		return nil, fmt.Errorf("%w: actor is required", database.ErrInvalidInput)
	}
	if err := base.ValidateString(actor.Email, "email"); err != nil {
		return nil, err
	}
	if err := base.ValidateUUID(actor.RoleID, "role_id"); err != nil {
		return nil, err
	}

	insert := r.InsertBuilder().
		Columns(schema.Actors.InsertColumns()...).
		Values(actor.Email, actor.DisplayName, actor.PasswordHash, actor.RoleID, actor.IsActive)

	return r.InsertReturning(ctx, insert)
}

// Update overwrites the mutable fields of an actor visible to scope.
// An empty PasswordHash leaves the stored hash untouched.
func (r *ActorRepository) Update(ctx context.Context, id uuid.UUID, actor *model.Actor, scope access.Scope) (*model.Actor, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, fmt.Errorf("%w: actor is required", database.ErrInvalidInput)
	}

	update := r.UpdateBuilder().
		Set(schema.Actors.Email.Bare(), actor.Email).
		Set(schema.Actors.DisplayName.Bare(), actor.DisplayName).
		Set(schema.Actors.RoleID.Bare(), actor.RoleID).
		Set(schema.Actors.IsActive.Bare(), actor.IsActive).
		Set(schema.Actors.UpdatedAt.Bare(), squirrel.Expr("now()")).
		Where(squirrel.Eq{schema.Actors.ID.Qualified(): id})
	if actor.PasswordHash != "" {
		update = update.Set(schema.Actors.PasswordHash.Bare(), actor.PasswordHash)
	}
	for _, pred := range scopeWhere(scope) {
		update = update.Where(pred)
	}

	return r.Base.Update(ctx, update)
}

// Delete removes an actor visible to scope.
func (r *ActorRepository) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return err
	}
	return r.Base.Delete(ctx, schema.Actors.ID.Qualified(), id, scopeWhere(scope)...)
}

func scopeWhere(scope access.Scope) []squirrel.Sqlizer {
	return base.ScopeWhere(scope, schema.Actors.ID.Qualified())
}
