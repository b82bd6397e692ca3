package actor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/guard"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Get returns an actor visible to scope. Non-admins see only themselves.
func (s *Service) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.Actor, error) {
	a, err := s.actors.Get(ctx, id, scope)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", scope.Deny(entity, err))
	}
	return a, nil
}

// List returns one page of the actors visible to scope.
func (s *Service) List(ctx context.Context, scope access.Scope, filter Filter, page model.PageRequest) (model.PageResult[model.Actor], error) {
	res, err := s.actors.List(ctx, scope, filter, page.Normalize())
	if err != nil {
		return model.PageResult[model.Actor]{}, fmt.Errorf("list actors: %w", err)
	}
	return res, nil
}

// Create registers an actor. Only an unrestricted scope may do so.
func (s *Service) Create(ctx context.Context, scope access.Scope, input CreateInput) (*model.Actor, error) {
	if scope.IsRestricted() {
		return nil, model.NotAuthorized("actors can only be created by an administrator")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a := &model.Actor{
		Email:       strings.TrimSpace(input.Email),
		DisplayName: strings.TrimSpace(input.DisplayName),
		RoleID:      input.RoleID,
		IsActive:    true,
	}
	if input.IsActive != nil {
		a.IsActive = *input.IsActive
	}

	plan := guard.Plan{
		References: references,
		Values:     guard.Values{}.Set("role_id", a.RoleID),
		Unique:     []guard.Unique{uniqueEmail(a.Email)},
	}
	if err := s.guard.Check(ctx, plan); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	a.PasswordHash = string(hash)

	created, err := s.actors.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create actor: %w", err)
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "actors",
		Operation:   model.OperationInsert,
		RecordID:    created.ID,
		ActorID:     scope.ActorID(),
		After:       created,
		Description: "actor " + created.Email + " created",
	})
	s.log.InfoContext(ctx, "actor created",
		slog.String("actor_id", created.ID.String()),
		slog.String("email", created.Email),
	)

	return created, nil
}

// Update changes the fields set in input on an actor visible to scope.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput, scope access.Scope) (*model.Actor, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if scope.IsRestricted() && (input.RoleID != nil || input.IsActive != nil) {
		return nil, model.NotAuthorized("role and activation can only be changed by an administrator")
	}

	old, err := s.actors.Get(ctx, id, scope)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", scope.Deny(entity, err))
	}

	next := *old
	next.PasswordHash = ""
	plan := guard.Plan{References: references, Values: guard.Values{}, ExcludeID: id}

	if input.Email != nil {
		next.Email = strings.TrimSpace(*input.Email)
		if !strings.EqualFold(next.Email, old.Email) {
			plan.Unique = append(plan.Unique, uniqueEmail(next.Email))
		}
	}
	if input.DisplayName != nil {
		next.DisplayName = strings.TrimSpace(*input.DisplayName)
	}
	if input.RoleID != nil && *input.RoleID != old.RoleID {
		next.RoleID = *input.RoleID
		plan.Values.Set("role_id", next.RoleID)
	}
	if input.IsActive != nil {
		next.IsActive = *input.IsActive
	}

	if len(plan.Values) > 0 || len(plan.Unique) > 0 {
		if err := s.guard.Check(ctx, plan); err != nil {
			return nil, err
		}
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.hashCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		next.PasswordHash = string(hash)
	}

	updated, err := s.actors.Update(ctx, id, &next, scope)
	if err != nil {
		return nil, fmt.Errorf("update actor: %w", scope.Deny(entity, err))
	}

	desc := "actor " + updated.Email + " updated"
	if input.Password != nil {
		desc += " (password changed)"
	}
	s.audit.Record(ctx, audit.Event{
		Table:       "actors",
		Operation:   model.OperationUpdate,
		RecordID:    id,
		ActorID:     scope.ActorID(),
		Before:      old,
		After:       updated,
		Description: desc,
	})
	s.log.InfoContext(ctx, "actor updated", slog.String("actor_id", id.String()))

	return updated, nil
}

// Delete removes an actor that owns, is assigned or has booked nothing.
// Deactivating is the usual way to retire an actor with history.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	if scope.IsRestricted() {
		return model.NotAuthorized("actors can only be deleted by an administrator")
	}

	old, err := s.actors.Get(ctx, id, scope)
	if err != nil {
		return fmt.Errorf("get actor: %w", scope.Deny(entity, err))
	}
	if err := s.guard.CheckDependents(ctx, dependents, id); err != nil {
		return err
	}
	if err := s.actors.Delete(ctx, id, scope); err != nil {
		return fmt.Errorf("delete actor: %w", scope.Deny(entity, err))
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "actors",
		Operation:   model.OperationDelete,
		RecordID:    id,
		ActorID:     scope.ActorID(),
		Before:      old,
		Description: "actor " + old.Email + " deleted",
	})
	s.log.InfoContext(ctx, "actor deleted", slog.String("actor_id", id.String()))

	return nil
}
