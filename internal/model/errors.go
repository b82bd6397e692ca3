package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind is the stable, user-facing error category returned to callers.
type ErrorKind string

const (
	KindInvalidReference ErrorKind = "invalid_reference"
	KindDuplicateKey     ErrorKind = "duplicate_key"
	KindNotAuthorized    ErrorKind = "not_authorized"
	KindNotFound         ErrorKind = "not_found"
	KindSessionInvalid   ErrorKind = "session_invalid"
	KindDependencyExists ErrorKind = "dependency_exists"
	KindValidation       ErrorKind = "validation"
	KindUnknown          ErrorKind = "unknown"
)

// Sentinels for errors.Is. They match any *Error of the same kind regardless of field.
var (
	ErrInvalidReference = &Error{Kind: KindInvalidReference}
	ErrDuplicateKey     = &Error{Kind: KindDuplicateKey}
	ErrNotAuthorized    = &Error{Kind: KindNotAuthorized}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrSessionInvalid   = &Error{Kind: KindSessionInvalid}
	ErrDependencyExists = &Error{Kind: KindDependencyExists}
	ErrValidation       = &Error{Kind: KindValidation}
	ErrUnknown          = &Error{Kind: KindUnknown}
)

// Error is a classified failure. Field is set for reference, duplicate,
// dependency and validation errors.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
	// Fields lists every failing input field of a validation error.
	Fields []FieldError
	Err    error
}

// FieldError is one failed input check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	var s string
	switch {
	case e.Field != "" && e.Message != "":
		s = fmt.Sprintf("%s(%s): %s", e.Kind, e.Field, e.Message)
	case e.Field != "":
		s = fmt.Sprintf("%s(%s)", e.Kind, e.Field)
	case e.Message != "":
		s = fmt.Sprintf("%s: %s", e.Kind, e.Message)
	default:
		s = string(e.Kind)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match when target is an *Error of the same kind and, if the
// target names a field, the same field.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}

// InvalidReference reports a foreign key that points at a missing or inactive row.
func InvalidReference(field string) *Error {
	return &Error{Kind: KindInvalidReference, Field: field}
}

// DuplicateKey reports a uniqueness violation on field.
func DuplicateKey(field string) *Error {
	return &Error{Kind: KindDuplicateKey, Field: field}
}

// NotAuthorized reports a target outside the caller's scope or capabilities.
func NotAuthorized(msg string) *Error {
	return &Error{Kind: KindNotAuthorized, Message: msg}
}

// NotFound reports a missing row of the given entity.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// SessionInvalid reports a missing, expired or revoked session.
func SessionInvalid(msg string) *Error {
	return &Error{Kind: KindSessionInvalid, Message: msg}
}

// DependencyExists reports dependent rows in table that block a delete.
func DependencyExists(table string) *Error {
	return &Error{Kind: KindDependencyExists, Field: table}
}

// Validation reports an input field that failed a local check.
func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: msg}
}

// NewValidationError bundles field errors. Field and Message describe the first one.
func NewValidationError(errs ...FieldError) *Error {
	if len(errs) == 0 {
		return &Error{Kind: KindValidation}
	}
	parts := make([]string, len(errs))
	for i, fe := range errs {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return &Error{
		Kind:    KindValidation,
		Field:   errs[0].Field,
		Message: strings.Join(parts, "; "),
		Fields:  errs,
	}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
