package todo

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/model"
)

// CreateInput holds the parameters for creating a todo.
type CreateInput struct {
	Title       string
	Description *string
	PriorityID  uuid.UUID
	// AssignedToActorID defaults to the creator.
	AssignedToActorID *uuid.UUID
	CaseID            *uuid.UUID
	Status            model.TodoStatus
	DueAt             *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []model.FieldError

	errs = checkTitle(errs, i.Title)
	if i.Description != nil && len(*i.Description) > 5000 {
		errs = append(errs, model.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if i.PriorityID == uuid.Nil {
		errs = append(errs, model.FieldError{Field: "priority_id", Message: "required"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, model.FieldError{Field: "status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return model.NewValidationError(errs...)
	}
	return nil
}

// UpdateInput holds the parameters for updating a todo. Nil fields are left unchanged.
type UpdateInput struct {
	Title             *string
	Description       *string
	PriorityID        *uuid.UUID
	AssignedToActorID *uuid.UUID
	CaseID            *uuid.UUID
	DetachCase        bool
	Status            *model.TodoStatus
	DueAt             *time.Time
	ClearDueAt        bool
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []model.FieldError

	if i.Title != nil {
		errs = checkTitle(errs, *i.Title)
	}
	if i.Description != nil && len(*i.Description) > 5000 {
		errs = append(errs, model.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, model.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.DetachCase && i.CaseID != nil {
		errs = append(errs, model.FieldError{Field: "case_id", Message: "cannot attach and detach at once"})
	}
	if i.ClearDueAt && i.DueAt != nil {
		errs = append(errs, model.FieldError{Field: "due_at", Message: "cannot set and clear at once"})
	}

	if len(errs) > 0 {
		return model.NewValidationError(errs...)
	}
	return nil
}

func checkTitle(errs []model.FieldError, title string) []model.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, model.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		return append(errs, model.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}
