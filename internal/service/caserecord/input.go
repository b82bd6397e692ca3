package caserecord

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/model"
)

const (
	maxCaseNumberLen  = 50
	maxTitleLen       = 200
	maxDescriptionLen = 5000
)

// CreateInput holds the parameters for creating a case.
type CreateInput struct {
	CaseNumber          string
	Title               string
	Description         *string
	AssignedToActorID   *uuid.UUID
	ApplicationID       uuid.UUID
	OriginID            uuid.UUID
	PriorityID          uuid.UUID
	Status              model.CaseStatus // empty = open
	Complexity          model.Complexity // empty = medium
	ClassificationScore float64
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []model.FieldError

	errs = checkCaseNumber(errs, i.CaseNumber)
	errs = checkTitle(errs, i.Title)
	errs = checkDescription(errs, i.Description)

	if i.ApplicationID == uuid.Nil {
		errs = append(errs, model.FieldError{Field: "application_id", Message: "required"})
	}
	if i.OriginID == uuid.Nil {
		errs = append(errs, model.FieldError{Field: "origin_id", Message: "required"})
	}
	if i.PriorityID == uuid.Nil {
		errs = append(errs, model.FieldError{Field: "priority_id", Message: "required"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, model.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Complexity != "" && !i.Complexity.IsValid() {
		errs = append(errs, model.FieldError{Field: "complexity", Message: "invalid value"})
	}
	errs = checkScore(errs, i.ClassificationScore)

	if len(errs) > 0 {
		return model.NewValidationError(errs...)
	}
	return nil
}

// UpdateInput holds the parameters for updating a case. Nil fields are left unchanged.
type UpdateInput struct {
	CaseNumber          *string
	Title               *string
	Description         *string // ptr("") = clear
	AssignedToActorID   *uuid.UUID
	UnassignActor       bool
	ApplicationID       *uuid.UUID
	OriginID            *uuid.UUID
	PriorityID          *uuid.UUID
	Status              *model.CaseStatus
	Complexity          *model.Complexity
	ClassificationScore *float64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []model.FieldError

	if i.CaseNumber != nil {
		errs = checkCaseNumber(errs, *i.CaseNumber)
	}
	if i.Title != nil {
		errs = checkTitle(errs, *i.Title)
	}
	errs = checkDescription(errs, i.Description)

	if i.UnassignActor && i.AssignedToActorID != nil {
		errs = append(errs, model.FieldError{Field: "assigned_to_actor_id", Message: "cannot assign and unassign at once"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, model.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Complexity != nil && !i.Complexity.IsValid() {
		errs = append(errs, model.FieldError{Field: "complexity", Message: "invalid value"})
	}
	if i.ClassificationScore != nil {
		errs = checkScore(errs, *i.ClassificationScore)
	}

	if len(errs) > 0 {
		return model.NewValidationError(errs...)
	}
	return nil
}

func checkCaseNumber(errs []model.FieldError, v string) []model.FieldError {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return append(errs, model.FieldError{Field: "case_number", Message: "required"})
	case len(v) > maxCaseNumberLen:
		return append(errs, model.FieldError{Field: "case_number", Message: "max 50 characters"})
	}
	return errs
}

func checkTitle(errs []model.FieldError, v string) []model.FieldError {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return append(errs, model.FieldError{Field: "title", Message: "required"})
	case len(v) > maxTitleLen:
		return append(errs, model.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}

func checkDescription(errs []model.FieldError, v *string) []model.FieldError {
	if v != nil && len(strings.TrimSpace(*v)) > maxDescriptionLen {
		return append(errs, model.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	return errs
}

func checkScore(errs []model.FieldError, v float64) []model.FieldError {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 100 {
		return append(errs, model.FieldError{Field: "classification_score", Message: "must be between 0 and 100"})
	}
	return errs
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
