// Package caserecords implements the case_records repository.
package caserecords

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

// Filter narrows a case listing. Zero fields are ignored.
type Filter struct {
	Search            string
	Status            model.CaseStatus
	Complexity        model.Complexity
	ApplicationID     *uuid.UUID
	OriginID          *uuid.UUID
	PriorityID        *uuid.UUID
	OwnerActorID      *uuid.UUID
	AssignedToActorID *uuid.UUID
}

var sortColumns = base.SortColumns{
	"case_number":          schema.CaseRecords.CaseNumber.Qualified(),
	"title":                schema.CaseRecords.Title.Qualified(),
	"status":               schema.CaseRecords.Status.Qualified(),
	"classification_score": schema.CaseRecords.ClassificationScore.Qualified(),
	"created_at":           schema.CaseRecords.CreatedAt.Qualified(),
	"updated_at":           schema.CaseRecords.UpdatedAt.Qualified(),
}

// ownerColumns grant visibility of a case: its owner or its assignee.
var ownerColumns = []string{
	schema.CaseRecords.OwnerActorID.Qualified(),
	schema.CaseRecords.AssignedToActorID.Qualified(),
}

// CaseRepository provides case persistence.
type CaseRepository struct {
	*base.Base[model.CaseRecord]
}

// NewCaseRepository creates a new case repository.
func NewCaseRepository(q database.Querier) *CaseRepository {
	return &CaseRepository{
		Base: base.MustNewBase[model.CaseRecord](q, base.Config{
			Table:   schema.CaseRecords.Name.String(),
			Columns: schema.CaseRecords.Columns(),
		}),
	}
}

// Get returns a case visible to scope.
func (r *CaseRepository) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.CaseRecord, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, schema.CaseRecords.ID.Qualified(), id, base.ScopeWhere(scope, ownerColumns...)...)
}

// List returns one page of cases visible to scope.
func (r *CaseRepository) List(ctx context.Context, scope access.Scope, filter Filter, page model.PageRequest) (model.PageResult[model.CaseRecord], error) {
	query := r.filtered(scope, filter)
	return r.Page(ctx, query, page, sortColumns.OrderBy(page, schema.CaseRecords.CreatedAt.Qualified(), schema.CaseRecords.ID.Qualified())...)
}

// ListForExport returns up to limit cases visible to scope, by case number.
func (r *CaseRepository) ListForExport(ctx context.Context, scope access.Scope, filter Filter, limit int) ([]model.CaseRecord, error) {
	query := r.filtered(scope, filter).
		OrderBy(schema.CaseRecords.CaseNumber.Qualified() + " ASC").
		Limit(uint64(limit))
	return r.Base.List(ctx, query)
}

// Create inserts a case.
func (r *CaseRepository) Create(ctx context.Context, c *model.CaseRecord) (*model.CaseRecord, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: case is required", database.ErrInvalidInput)
	}
	if err := base.ValidateString(c.CaseNumber, "case_number"); err != nil {
		return nil, err
	}
	if err := base.ValidateUUID(c.OwnerActorID, "owner_actor_id"); err != nil {
		return nil, err
	}

	insert := r.InsertBuilder().
		Columns(schema.CaseRecords.InsertColumns()...).
		Values(
			c.CaseNumber, c.Title, c.Description, c.OwnerActorID, c.AssignedToActorID,
			c.ApplicationID, c.OriginID, c.PriorityID, c.Status, c.Complexity, c.ClassificationScore,
		)

	return r.InsertReturning(ctx, insert)
}

// Update overwrites the mutable fields of a case visible to scope.
// The owner never changes.
func (r *CaseRepository) Update(ctx context.Context, id uuid.UUID, c *model.CaseRecord, scope access.Scope) (*model.CaseRecord, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: case is required", database.ErrInvalidInput)
	}

	update := r.UpdateBuilder().
		Set(schema.CaseRecords.CaseNumber.Bare(), c.CaseNumber).
		Set(schema.CaseRecords.Title.Bare(), c.Title).
		Set(schema.CaseRecords.Description.Bare(), c.Description).
		Set(schema.CaseRecords.AssignedToActorID.Bare(), c.AssignedToActorID).
		Set(schema.CaseRecords.ApplicationID.Bare(), c.ApplicationID).
		Set(schema.CaseRecords.OriginID.Bare(), c.OriginID).
		Set(schema.CaseRecords.PriorityID.Bare(), c.PriorityID).
		Set(schema.CaseRecords.Status.Bare(), c.Status).
		Set(schema.CaseRecords.Complexity.Bare(), c.Complexity).
		Set(schema.CaseRecords.ClassificationScore.Bare(), c.ClassificationScore).
		Set(schema.CaseRecords.UpdatedAt.Bare(), squirrel.Expr("now()")).
		Where(squirrel.Eq{schema.CaseRecords.ID.Qualified(): id})
	for _, pred := range base.ScopeWhere(scope, ownerColumns...) {
		update = update.Where(pred)
	}

	return r.Base.Update(ctx, update)
}

// Delete removes a case visible to scope.
func (r *CaseRepository) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return err
	}
	return r.Base.Delete(ctx, schema.CaseRecords.ID.Qualified(), id, base.ScopeWhere(scope, ownerColumns...)...)
}

func (r *CaseRepository) filtered(scope access.Scope, f Filter) squirrel.SelectBuilder {
	query := scope.Apply(r.SelectBuilder(), ownerColumns...)

	if s := strings.TrimSpace(f.Search); s != "" {
		query = query.Where(base.ILikeAny(s, schema.CaseRecords.CaseNumber.Qualified(), schema.CaseRecords.Title.Qualified()))
	}
	if f.Status != "" {
		query = query.Where(squirrel.Eq{schema.CaseRecords.Status.Qualified(): f.Status})
	}
	if f.Complexity != "" {
		query = query.Where(squirrel.Eq{schema.CaseRecords.Complexity.Qualified(): f.Complexity})
	}
	if f.ApplicationID != nil {
		query = query.Where(squirrel.Eq{schema.CaseRecords.ApplicationID.Qualified(): *f.ApplicationID})
	}
	if f.OriginID != nil {
		query = query.Where(squirrel.Eq{schema.CaseRecords.OriginID.Qualified(): *f.OriginID})
	}
	if f.PriorityID != nil {
		query = query.Where(squirrel.Eq{schema.CaseRecords.PriorityID.Qualified(): *f.PriorityID})
	}
	if f.OwnerActorID != nil {
		query = query.Where(squirrel.Eq{schema.CaseRecords.OwnerActorID.Qualified(): *f.OwnerActorID})
	}
	if f.AssignedToActorID != nil {
		query = query.Where(squirrel.Eq{schema.CaseRecords.AssignedToActorID.Qualified(): *f.AssignedToActorID})
	}
	return query
}
