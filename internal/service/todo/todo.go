package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/guard"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Get returns a todo visible to scope.
func (s *Service) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.TodoRecord, error) {
	t, err := s.todos.Get(ctx, id, scope)
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", scope.Deny(entity, err))
	}
	return t, nil
}

// List returns one page of the todos visible to scope.
func (s *Service) List(ctx context.Context, scope access.Scope, filter Filter, page model.PageRequest) (model.PageResult[model.TodoRecord], error) {
	res, err := s.todos.List(ctx, scope, filter, page.Normalize())
	if err != nil {
		return model.PageResult[model.TodoRecord]{}, fmt.Errorf("list todos: %w", err)
	}
	return res, nil
}

// Create inserts a todo created by the scope's actor. A linked case must be
// visible to scope.
func (s *Service) Create(ctx context.Context, scope access.Scope, input CreateInput) (*model.TodoRecord, error) {
	actorID := scope.ActorID()
	if actorID == uuid.Nil {
		return nil, model.NotAuthorized("an actor is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	t := &model.TodoRecord{
		Title:             strings.TrimSpace(input.Title),
		Description:       input.Description,
		PriorityID:        input.PriorityID,
		AssignedToActorID: actorID,
		CreatedByActorID:  actorID,
		CaseID:            input.CaseID,
		Status:            input.Status,
		DueAt:             input.DueAt,
	}
	if input.AssignedToActorID != nil {
		t.AssignedToActorID = *input.AssignedToActorID
	}
	if t.Status == "" {
		t.Status = model.TodoStatusPending
	}

	values := guard.Values{}.
		Set("priority_id", t.PriorityID).
		Set("assigned_to_actor_id", t.AssignedToActorID).
		SetOptional("case_id", t.CaseID)
	if err := s.guard.Check(ctx, guard.Plan{References: references, Values: values, Scope: scope}); err != nil {
		return nil, err
	}

	created, err := s.todos.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "todo_records",
		Operation:   model.OperationInsert,
		RecordID:    created.ID,
		ActorID:     actorID,
		After:       created,
		Description: "todo created",
	})

	s.log.InfoContext(ctx, "todo created",
		slog.String("actor_id", actorID.String()),
		slog.String("todo_id", created.ID.String()),
	)

	return created, nil
}

// Update changes the fields set in input on a todo visible to scope.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput, scope access.Scope) (*model.TodoRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, err := s.todos.Get(ctx, id, scope)
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", scope.Deny(entity, err))
	}

	next := *old
	values := guard.Values{}
	if input.Title != nil {
		next.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		next.Description = input.Description
	}
	if input.PriorityID != nil && *input.PriorityID != old.PriorityID {
		next.PriorityID = *input.PriorityID
		values.Set("priority_id", next.PriorityID)
	}
	if input.AssignedToActorID != nil && *input.AssignedToActorID != old.AssignedToActorID {
		next.AssignedToActorID = *input.AssignedToActorID
		values.Set("assigned_to_actor_id", next.AssignedToActorID)
	}
	if input.DetachCase {
		next.CaseID = nil
	}
	if input.CaseID != nil {
		next.CaseID = input.CaseID
		values.Set("case_id", *input.CaseID)
	}
	if input.Status != nil {
		next.Status = *input.Status
	}
	if input.ClearDueAt {
		next.DueAt = nil
	}
	if input.DueAt != nil {
		next.DueAt = input.DueAt
	}

	if len(values) > 0 {
		if err := s.guard.Check(ctx, guard.Plan{References: references, Values: values, Scope: scope}); err != nil {
			return nil, err
		}
	}

	updated, err := s.todos.Update(ctx, id, &next, scope)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", scope.Deny(entity, err))
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "todo_records",
		Operation:   model.OperationUpdate,
		RecordID:    id,
		ActorID:     scope.ActorID(),
		Before:      old,
		After:       updated,
		Description: "todo updated",
	})

	s.log.InfoContext(ctx, "todo updated", slog.String("todo_id", id.String()))

	return updated, nil
}

// Delete removes a todo visible to scope unless time is booked against it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	old, err := s.todos.Get(ctx, id, scope)
	if err != nil {
		return fmt.Errorf("get todo: %w", scope.Deny(entity, err))
	}

	if err := s.guard.CheckDependents(ctx, dependents, id); err != nil {
		return err
	}

	if err := s.todos.Delete(ctx, id, scope); err != nil {
		return fmt.Errorf("delete todo: %w", scope.Deny(entity, err))
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "todo_records",
		Operation:   model.OperationDelete,
		RecordID:    id,
		ActorID:     scope.ActorID(),
		Before:      old,
		Description: "todo deleted",
	})

	s.log.InfoContext(ctx, "todo deleted", slog.String("todo_id", id.String()))

	return nil
}
