// Package timeentry books time against cases and todos.
package timeentry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/database/repository/timeentries"
	"github.com/heartmarshall/casedesk/internal/guard"
	"github.com/heartmarshall/casedesk/internal/model"
)

const entity = "time entry"

// Filter selects entries in List.
type Filter = timeentries.Filter

type entryRepo interface {
	Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.TimeEntry, error)
	List(ctx context.Context, scope access.Scope, filter timeentries.Filter, page model.PageRequest) (model.PageResult[model.TimeEntry], error)
	Create(ctx context.Context, e *model.TimeEntry) (*model.TimeEntry, error)
	Update(ctx context.Context, id uuid.UUID, e *model.TimeEntry, scope access.Scope) (*model.TimeEntry, error)
	Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error
}

type integrityGuard interface {
	CheckReferences(ctx context.Context, scope access.Scope, refs []guard.Reference, values guard.Values) error
}

type auditRecorder interface {
	Record(ctx context.Context, ev audit.Event)
}

// Time can only be booked against a parent visible to the caller.
var references = []guard.Reference{
	{Field: "case_id", Table: "case_records", OwnerColumns: []string{"owner_actor_id", "assigned_to_actor_id"}},
	{Field: "todo_id", Table: "todo_records", OwnerColumns: []string{"assigned_to_actor_id", "created_by_actor_id"}},
}

// Service implements the time entry operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	guard   integrityGuard
	audit   auditRecorder
	now     func() time.Time
}

// NewService creates a new time entry service.
func NewService(log *slog.Logger, entries entryRepo, g integrityGuard, recorder auditRecorder) *Service {
	return &Service{
		log:     log.With("service", "timeentry"),
		entries: entries,
		guard:   g,
		audit:   recorder,
		now:     time.Now,
	}
}

// CreateInput holds the parameters for booking time. A nil EndTime starts a
// running timer.
type CreateInput struct {
	ParentType model.ParentType
	ParentID   uuid.UUID
	StartTime  time.Time
	EndTime    *time.Time
	Note       *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []model.FieldError

	switch i.ParentType {
	case model.ParentCase, model.ParentTodo:
	default:
		errs = append(errs, model.FieldError{Field: "parent_type", Message: "must be case or todo"})
	}
	if i.ParentID == uuid.Nil {
		errs = append(errs, model.FieldError{Field: "parent_id", Message: "required"})
	}
	errs = checkSpan(errs, i.StartTime, i.EndTime)

	if len(errs) > 0 {
		return model.NewValidationError(errs...)
	}
	return nil
}

// UpdateInput holds the parameters for correcting an entry. The parent
// never changes.
type UpdateInput struct {
	StartTime *time.Time
	EndTime   *time.Time
	Note      *string
}

func checkSpan(errs []model.FieldError, start time.Time, end *time.Time) []model.FieldError {
	if start.IsZero() {
		return append(errs, model.FieldError{Field: "start_time", Message: "required"})
	}
	if end != nil && end.Before(start) {
		return append(errs, model.FieldError{Field: "end_time", Message: "must not be before start_time"})
	}
	return errs
}

func duration(start time.Time, end *time.Time) int64 {
	if end == nil {
		return 0
	}
	return int64(end.Sub(start) / time.Second)
}

// Get returns an entry visible to scope.
func (s *Service) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.TimeEntry, error) {
	e, err := s.entries.Get(ctx, id, scope)
	if err != nil {
		return nil, fmt.Errorf("get time entry: %w", scope.Deny(entity, err))
	}
	return e, nil
}

// List returns one page of the entries visible to scope.
func (s *Service) List(ctx context.Context, scope access.Scope, filter Filter, page model.PageRequest) (model.PageResult[model.TimeEntry], error) {
	res, err := s.entries.List(ctx, scope, filter, page.Normalize())
	if err != nil {
		return model.PageResult[model.TimeEntry]{}, fmt.Errorf("list time entries: %w", err)
	}
	return res, nil
}

// Create books time owned by the scope's actor against exactly one parent
// visible to scope.
func (s *Service) Create(ctx context.Context, scope access.Scope, input CreateInput) (*model.TimeEntry, error) {
	actorID := scope.ActorID()
	if actorID == uuid.Nil {
		return nil, model.NotAuthorized("an actor is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	e := &model.TimeEntry{
		OwnerActorID:    actorID,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		DurationSeconds: duration(input.StartTime, input.EndTime),
		Note:            input.Note,
	}
	parent := input.ParentID
	values := guard.Values{}
	if input.ParentType == model.ParentCase {
		e.CaseID = &parent
		values.Set("case_id", parent)
	} else {
		e.TodoID = &parent
		values.Set("todo_id", parent)
	}

	if err := s.guard.CheckReferences(ctx, scope, references, values); err != nil {
		return nil, err
	}

	created, err := s.entries.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("create time entry: %w", err)
	}

	s.record(ctx, model.OperationInsert, created.ID, actorID, nil, created, "time entry booked")
	s.log.InfoContext(ctx, "time entry created",
		slog.String("actor_id", actorID.String()),
		slog.String("entry_id", created.ID.String()),
		slog.String("parent_type", string(input.ParentType)),
	)

	return created, nil
}

// Update corrects the span or note of an entry visible to scope.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput, scope access.Scope) (*model.TimeEntry, error) {
	old, err := s.entries.Get(ctx, id, scope)
	if err != nil {
		return nil, fmt.Errorf("get time entry: %w", scope.Deny(entity, err))
	}

	next := *old
	if input.StartTime != nil {
		next.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		next.EndTime = input.EndTime
	}
	if input.Note != nil {
		next.Note = input.Note
	}
	if errs := checkSpan(nil, next.StartTime, next.EndTime); len(errs) > 0 {
		return nil, model.NewValidationError(errs...)
	}
	next.DurationSeconds = duration(next.StartTime, next.EndTime)

	return s.write(ctx, id, old, &next, scope, "time entry updated")
}

// Stop closes a running entry at end, or now when end is zero.
func (s *Service) Stop(ctx context.Context, id uuid.UUID, end time.Time, scope access.Scope) (*model.TimeEntry, error) {
	old, err := s.entries.Get(ctx, id, scope)
	if err != nil {
		return nil, fmt.Errorf("get time entry: %w", scope.Deny(entity, err))
	}
	if old.EndTime != nil {
		return nil, model.Validation("end_time", "entry is already stopped")
	}

	if end.IsZero() {
		end = s.now()
	}
	if end.Before(old.StartTime) {
		return nil, model.Validation("end_time", "must not be before start_time")
	}

	next := *old
	next.EndTime = &end
	next.DurationSeconds = duration(next.StartTime, next.EndTime)

	return s.write(ctx, id, old, &next, scope, "time entry stopped")
}

func (s *Service) write(ctx context.Context, id uuid.UUID, old, next *model.TimeEntry, scope access.Scope, what string) (*model.TimeEntry, error) {
	updated, err := s.entries.Update(ctx, id, next, scope)
	if err != nil {
		return nil, fmt.Errorf("update time entry: %w", scope.Deny(entity, err))
	}

	s.record(ctx, model.OperationUpdate, id, scope.ActorID(), old, updated, what)
	s.log.InfoContext(ctx, what,
		slog.String("entry_id", id.String()),
		slog.Int64("duration_seconds", updated.DurationSeconds),
	)
	return updated, nil
}

// Delete removes an entry visible to scope.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	old, err := s.entries.Get(ctx, id, scope)
	if err != nil {
		return fmt.Errorf("get time entry: %w", scope.Deny(entity, err))
	}
	if err := s.entries.Delete(ctx, id, scope); err != nil {
		return fmt.Errorf("delete time entry: %w", scope.Deny(entity, err))
	}

	s.record(ctx, model.OperationDelete, id, scope.ActorID(), old, nil, "time entry deleted")
	s.log.InfoContext(ctx, "time entry deleted", slog.String("entry_id", id.String()))
	return nil
}

func (s *Service) record(ctx context.Context, op model.AuditOperation, id, actorID uuid.UUID, before, after *model.TimeEntry, desc string) {
	ev := audit.Event{
		Table:       "time_entries",
		Operation:   op,
		RecordID:    id,
		ActorID:     actorID,
		Description: desc,
	}
	// Absent snapshots stay untyped nil.
	if before != nil {
		ev.Before = before
	}
	if after != nil {
		ev.After = after
	}
	s.audit.Record(ctx, ev)
}
