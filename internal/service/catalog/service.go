// Package catalog manages the reference catalogs: applications, origins and
// priorities. Everyone reads them; only an unrestricted scope changes them.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/database/repository/catalogs"
	"github.com/heartmarshall/casedesk/internal/database/schema"
	"github.com/heartmarshall/casedesk/internal/guard"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Filter selects items in List.
type Filter = catalogs.Filter

type itemRepo interface {
	Schema() schema.CatalogTable
	GetByID(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error)
	List(ctx context.Context, filter catalogs.Filter, page model.PageRequest) (model.PageResult[model.CatalogItem], error)
	Create(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error)
	Update(ctx context.Context, id uuid.UUID, item *model.CatalogItem) (*model.CatalogItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type integrityGuard interface {
	Check(ctx context.Context, plan guard.Plan) error
	CheckDependents(ctx context.Context, deps []guard.Dependent, id uuid.UUID) error
}

type auditRecorder interface {
	Record(ctx context.Context, ev audit.Event)
}

// dependentsOf lists the rows that keep a catalog item from being deleted.
var dependentsOf = map[string][]guard.Dependent{
	"applications": {{Table: "case_records", Column: "application_id"}},
	"origins":      {{Table: "case_records", Column: "origin_id"}},
	"priorities": {
		{Table: "case_records", Column: "priority_id"},
		{Table: "todo_records", Column: "priority_id"},
	},
}

// Service manages one catalog table.
type Service struct {
	log   *slog.Logger
	items itemRepo
	guard integrityGuard
	audit auditRecorder
	table string
}

// NewService creates a service for the table items is bound to.
func NewService(log *slog.Logger, items itemRepo, g integrityGuard, recorder auditRecorder) *Service {
	table := items.Schema().Name.String()
	return &Service{
		log:   log.With("service", "catalog", "table", table),
		items: items,
		guard: g,
		audit: recorder,
		table: table,
	}
}

// Table returns the catalog table name.
func (s *Service) Table() string { return s.table }

// Input holds the parameters for creating or updating an item. On update,
// nil fields are left unchanged.
type Input struct {
	Name        *string
	Description *string
	Rank        *int
	IsActive    *bool
}

// Validate checks all fields. requireName is set on create.
func (i Input) Validate(requireName bool) error {
	var errs []model.FieldError

	switch {
	case i.Name == nil && requireName:
		errs = append(errs, model.FieldError{Field: "name", Message: "required"})
	case i.Name != nil && strings.TrimSpace(*i.Name) == "":
		errs = append(errs, model.FieldError{Field: "name", Message: "required"})
	case i.Name != nil && len(strings.TrimSpace(*i.Name)) > 100:
		errs = append(errs, model.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if i.Rank != nil && *i.Rank < 0 {
		errs = append(errs, model.FieldError{Field: "rank", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return model.NewValidationError(errs...)
	}
	return nil
}

func (s *Service) requireUnrestricted(scope access.Scope) error {
	if scope.IsRestricted() {
		return model.NotAuthorized(s.table + " can only be changed by an administrator")
	}
	return nil
}

func (s *Service) uniqueName(name string) guard.Unique {
	return guard.Unique{Field: "name", Table: s.table, Column: "name", Value: name}
}

// Get returns one item.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s item: %w", s.table, access.Unrestricted.Deny(s.table+" item", err))
	}
	return item, nil
}

// List returns one page of items ordered by rank, then name.
func (s *Service) List(ctx context.Context, filter Filter, page model.PageRequest) (model.PageResult[model.CatalogItem], error) {
	res, err := s.items.List(ctx, filter, page.Normalize())
	if err != nil {
		return model.PageResult[model.CatalogItem]{}, fmt.Errorf("list %s: %w", s.table, err)
	}
	return res, nil
}

// Create inserts an item. New items are active unless input says otherwise.
func (s *Service) Create(ctx context.Context, scope access.Scope, input Input) (*model.CatalogItem, error) {
	if err := s.requireUnrestricted(scope); err != nil {
		return nil, err
	}
	if err := input.Validate(true); err != nil {
		return nil, err
	}

	item := &model.CatalogItem{
		Name:        strings.TrimSpace(*input.Name),
		Description: input.Description,
		IsActive:    true,
	}
	if input.Rank != nil {
		item.Rank = *input.Rank
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.guard.Check(ctx, guard.Plan{Unique: []guard.Unique{s.uniqueName(item.Name)}}); err != nil {
		return nil, err
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create %s item: %w", s.table, err)
	}

	s.audit.Record(ctx, audit.Event{
		Table:       s.table,
		Operation:   model.OperationInsert,
		RecordID:    created.ID,
		ActorID:     scope.ActorID(),
		After:       created,
		Description: s.table + " item " + created.Name + " created",
	})
	s.log.InfoContext(ctx, "catalog item created",
		slog.String("item_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// Update changes the fields set in input.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input, scope access.Scope) (*model.CatalogItem, error) {
	if err := s.requireUnrestricted(scope); err != nil {
		return nil, err
	}
	if err := input.Validate(false); err != nil {
		return nil, err
	}

	old, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s item: %w", s.table, scope.Deny(s.table+" item", err))
	}

	next := *old
	var unique []guard.Unique
	if input.Name != nil {
		next.Name = strings.TrimSpace(*input.Name)
		if next.Name != old.Name {
			unique = append(unique, s.uniqueName(next.Name))
		}
	}
	if input.Description != nil {
		next.Description = input.Description
	}
	if input.Rank != nil {
		next.Rank = *input.Rank
	}
	if input.IsActive != nil {
		next.IsActive = *input.IsActive
	}

	if len(unique) > 0 {
		if err := s.guard.Check(ctx, guard.Plan{Unique: unique, ExcludeID: id}); err != nil {
			return nil, err
		}
	}

	updated, err := s.items.Update(ctx, id, &next)
	if err != nil {
		return nil, fmt.Errorf("update %s item: %w", s.table, scope.Deny(s.table+" item", err))
	}

	s.audit.Record(ctx, audit.Event{
		Table:       s.table,
		Operation:   model.OperationUpdate,
		RecordID:    id,
		ActorID:     scope.ActorID(),
		Before:      old,
		After:       updated,
		Description: s.table + " item " + updated.Name + " updated",
	})
	s.log.InfoContext(ctx, "catalog item updated", slog.String("item_id", id.String()))

	return updated, nil
}

// Delete removes an item that no case or todo references. Deactivating is
// the usual way to retire an item that is still in use.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	if err := s.requireUnrestricted(scope); err != nil {
		return err
	}

	old, err := s.items.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get %s item: %w", s.table, scope.Deny(s.table+" item", err))
	}

	if err := s.guard.CheckDependents(ctx, dependentsOf[s.table], id); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s item: %w", s.table, scope.Deny(s.table+" item", err))
	}

	s.audit.Record(ctx, audit.Event{
		Table:       s.table,
		Operation:   model.OperationDelete,
		RecordID:    id,
		ActorID:     scope.ActorID(),
		Before:      old,
		Description: s.table + " item " + old.Name + " deleted",
	})
	s.log.InfoContext(ctx, "catalog item deleted", slog.String("item_id", id.String()))

	return nil
}
