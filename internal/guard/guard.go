// Package guard validates foreign keys, uniqueness and dependent rows before
// any write reaches the store.
//
// The checks are read-then-write and not atomic with the write that follows:
// two concurrent creates may both pass. The store's own constraints remain
// the final backstop and their violations classify the same way.
package guard

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/database"
	"github.com/heartmarshall/casedesk/internal/database/repository/base"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Reference declares that Field holds the id of a row in Table.
type Reference struct {
	Field         string
	Table         string
	RequireActive bool
	// OwnerColumns make the referenced row subject to the caller's scope.
	// A row outside the scope fails the same way as a missing one.
	OwnerColumns []string
}

// Unique declares that Value must not already exist in Table.Column.
type Unique struct {
	Field           string
	Table           string
	Column          string
	CaseInsensitive bool
	Value           any
}

// Dependent declares that rows of Table reference the target via Column.
type Dependent struct {
	Table  string
	Column string
}

// Values holds the foreign key values present in a payload, keyed by field.
type Values map[string]uuid.UUID

// Set records a present value.
func (v Values) Set(field string, id uuid.UUID) Values {
	v[field] = id
	return v
}

// SetOptional records value only when it is non-nil.
func (v Values) SetOptional(field string, id *uuid.UUID) Values {
	if id != nil {
		v[field] = *id
	}
	return v
}

// Plan is the full pre-write check for one create or update.
type Plan struct {
	References []Reference
	Values     Values
	// Scope limits references that declare OwnerColumns. The zero Scope
	// matches no rows.
	Scope  access.Scope
	Unique []Unique
	// ExcludeID is the record being updated; it never conflicts with itself.
	ExcludeID uuid.UUID
	IDColumn  string
}

// Guard runs integrity checks against the store.
type Guard struct {
	q database.Querier
}

// New creates a Guard.
func New(q database.Querier) *Guard {
	return &Guard{q: q}
}

// Check runs every reference check in declared order, then every uniqueness
// check. The first failure is returned.
func (g *Guard) Check(ctx context.Context, plan Plan) error {
	if err := g.CheckReferences(ctx, plan.Scope, plan.References, plan.Values); err != nil {
		return err
	}
	idCol := plan.IDColumn
	if idCol == "" {
		idCol = "id"
	}
	for _, u := range plan.Unique {
		if err := g.checkUnique(ctx, u, idCol, plan.ExcludeID); err != nil {
			return err
		}
	}
	return nil
}

// CheckReferences validates each present reference in declared order.
// Fields absent from values are skipped.
func (g *Guard) CheckReferences(ctx context.Context, scope access.Scope, refs []Reference, values Values) error {
	for _, ref := range refs {
		id, ok := values[ref.Field]
		if !ok {
			continue
		}
		if id == uuid.Nil {
			return model.InvalidReference(ref.Field)
		}

		where := squirrel.And{squirrel.Eq{"id": id}}
		if ref.RequireActive {
			where = append(where, squirrel.Eq{"is_active": true})
		}
		if len(ref.OwnerColumns) > 0 {
			if pred := scope.Predicate(ref.OwnerColumns...); pred != nil {
				where = append(where, pred)
			}
		}

		exists, err := base.Exists(ctx, g.q, ref.Table, where)
		if err != nil {
			return fmt.Errorf("check reference %s: %w", ref.Field, err)
		}
		if !exists {
			return model.InvalidReference(ref.Field)
		}
	}
	return nil
}

func (g *Guard) checkUnique(ctx context.Context, u Unique, idCol string, exclude uuid.UUID) error {
	var where squirrel.And
	if s, ok := u.Value.(string); ok && u.CaseInsensitive {
		where = append(where, squirrel.Expr("lower("+u.Column+") = lower(?)", s))
	} else {
		where = append(where, squirrel.Eq{u.Column: u.Value})
	}
	if exclude != uuid.Nil {
		where = append(where, squirrel.NotEq{idCol: exclude})
	}

	exists, err := base.Exists(ctx, g.q, u.Table, where)
	if err != nil {
		return fmt.Errorf("check unique %s: %w", u.Field, err)
	}
	if exists {
		return model.DuplicateKey(u.Field)
	}
	return nil
}

// CheckDependents fails with DependencyExists(table) for the first dependent
// table that still references id.
func (g *Guard) CheckDependents(ctx context.Context, deps []Dependent, id uuid.UUID) error {
	for _, dep := range deps {
		exists, err := base.Exists(ctx, g.q, dep.Table, squirrel.Eq{dep.Column: id})
		if err != nil {
			return fmt.Errorf("check dependents %s.%s: %w", dep.Table, dep.Column, err)
		}
		if exists {
			return model.DependencyExists(dep.Table)
		}
	}
	return nil
}
