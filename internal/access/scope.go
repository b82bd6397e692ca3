// Package access resolves which rows an actor may read or mutate.
package access

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/database"
	"github.com/heartmarshall/casedesk/internal/model"
)

type scopeKind uint8

const (
	scopeNone scopeKind = iota
	scopeUnrestricted
	scopeOwned
)

// Scope is the subset of rows visible to an actor. The zero Scope matches no rows.
type Scope struct {
	kind    scopeKind
	actorID uuid.UUID
}

// Unrestricted sees every row.
var Unrestricted = Scope{kind: scopeUnrestricted}

// OwnedBy sees only rows owned by or assigned to actorID.
func OwnedBy(actorID uuid.UUID) Scope {
	if actorID == uuid.Nil {
		return Scope{}
	}
	return Scope{kind: scopeOwned, actorID: actorID}
}

// Resolve derives the scope for an actor.
func Resolve(actorID uuid.UUID, isAdmin bool) Scope {
	if isAdmin {
		return Scope{kind: scopeUnrestricted, actorID: actorID}
	}
	return OwnedBy(actorID)
}

// IsUnrestricted reports whether the scope sees every row.
func (s Scope) IsUnrestricted() bool { return s.kind == scopeUnrestricted }

// IsRestricted reports whether the scope filters rows.
func (s Scope) IsRestricted() bool { return s.kind != scopeUnrestricted }

// ActorID returns the actor the scope was resolved for. It is uuid.Nil for
// the bare Unrestricted value and the zero scope.
func (s Scope) ActorID() uuid.UUID { return s.actorID }

func (s Scope) String() string {
	switch s.kind {
	case scopeUnrestricted:
		return "unrestricted"
	case scopeOwned:
		return "owned_by(" + s.actorID.String() + ")"
	default:
		return "none"
	}
}

// Predicate returns the row filter for the given owner columns, or nil when
// the scope is unrestricted. Any one of the columns matching grants visibility.
func (s Scope) Predicate(ownerColumns ...string) squirrel.Sqlizer {
	switch s.kind {
	case scopeUnrestricted:
		return nil
	case scopeOwned:
		if len(ownerColumns) == 0 {
			return squirrel.Expr("FALSE")
		}
		or := make(squirrel.Or, len(ownerColumns))
		for i, col := range ownerColumns {
			or[i] = squirrel.Eq{col: s.actorID}
		}
		return or
	default:
		return squirrel.Expr("FALSE")
	}
}

// Apply adds the scope predicate to q.
func (s Scope) Apply(q squirrel.SelectBuilder, ownerColumns ...string) squirrel.SelectBuilder {
	if pred := s.Predicate(ownerColumns...); pred != nil {
		return q.Where(pred)
	}
	return q
}

// Allows reports whether a row with the given owner/assignee ids is in scope.
func (s Scope) Allows(ownerIDs ...uuid.UUID) bool {
	switch s.kind {
	case scopeUnrestricted:
		return true
	case scopeOwned:
		for _, id := range ownerIDs {
			if id == s.actorID {
				return true
			}
		}
	}
	return false
}

// Deny maps a failed scoped lookup of entity to the caller-facing error:
// a missing row reads as NotAuthorized under a restricted scope and as
// NotFound under an unrestricted one. Other errors pass through.
func (s Scope) Deny(entity string, err error) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, database.ErrNotFound) && !errors.Is(err, model.ErrNotFound) {
		return err
	}
	if s.IsRestricted() {
		return model.NotAuthorized(entity + " is outside your scope")
	}
	return model.NotFound(entity)
}
