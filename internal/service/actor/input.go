package actor

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/model"
)

const minPasswordLen = 8

// CreateInput holds the parameters for creating an actor.
type CreateInput struct {
	Email       string
	DisplayName string
	Password    string
	RoleID      uuid.UUID
	IsActive    *bool // nil = active
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []model.FieldError

	errs = checkEmail(errs, i.Email)
	errs = checkDisplayName(errs, i.DisplayName)
	errs = checkPassword(errs, i.Password)
	if i.RoleID == uuid.Nil {
		errs = append(errs, model.FieldError{Field: "role_id", Message: "required"})
	}

	if len(errs) > 0 {
		return model.NewValidationError(errs...)
	}
	return nil
}

// UpdateInput holds the parameters for updating an actor. Nil fields are
// left unchanged. RoleID and IsActive need an unrestricted scope.
type UpdateInput struct {
	Email       *string
	DisplayName *string
	Password    *string
	RoleID      *uuid.UUID
	IsActive    *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []model.FieldError

	if i.Email != nil {
		errs = checkEmail(errs, *i.Email)
	}
	if i.DisplayName != nil {
		errs = checkDisplayName(errs, *i.DisplayName)
	}
	if i.Password != nil {
		errs = checkPassword(errs, *i.Password)
	}
	if i.RoleID != nil && *i.RoleID == uuid.Nil {
		errs = append(errs, model.FieldError{Field: "role_id", Message: "required"})
	}

	if len(errs) > 0 {
		return model.NewValidationError(errs...)
	}
	return nil
}

func checkEmail(errs []model.FieldError, email string) []model.FieldError {
	email = strings.TrimSpace(email)
	if email == "" {
		return append(errs, model.FieldError{Field: "email", Message: "required"})
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return append(errs, model.FieldError{Field: "email", Message: "invalid email address"})
	}
	return errs
}

func checkDisplayName(errs []model.FieldError, name string) []model.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, model.FieldError{Field: "display_name", Message: "required"})
	}
	if len(name) > 100 {
		return append(errs, model.FieldError{Field: "display_name", Message: "max 100 characters"})
	}
	return errs
}

func checkPassword(errs []model.FieldError, password string) []model.FieldError {
	if len(password) < minPasswordLen {
		return append(errs, model.FieldError{Field: "password", Message: "min 8 characters"})
	}
	if len(password) > 72 {
		return append(errs, model.FieldError{Field: "password", Message: "max 72 bytes"})
	}
	return errs
}
