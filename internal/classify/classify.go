// Package classify maps any failure from the data layer onto the closed
// user-facing error taxonomy in model.
package classify

import (
	"errors"

	"github.com/heartmarshall/casedesk/internal/database"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Classify returns the classified form of err. It is pure: the same input
// always produces the same output. A nil err yields nil.
func Classify(err error) *model.Error {
	if err == nil {
		return nil
	}

	var classified *model.Error
	if errors.As(err, &classified) {
		out := *classified
		if out.Message == "" {
			out.Message = Message(out.Kind, out.Field)
		}
		return &out
	}

	var storeErr *database.StoreError
	if errors.As(err, &storeErr) {
		return fromStore(storeErr, err)
	}

	switch {
	case errors.Is(err, database.ErrNotFound):
		return withMessage(model.KindNotFound, "", err)
	case errors.Is(err, database.ErrInvalidInput):
		return withMessage(model.KindValidation, "", err)
	}

	return withMessage(model.KindUnknown, "", err)
}

func fromStore(se *database.StoreError, cause error) *model.Error {
	switch se.Kind {
	case database.KindForeignKey:
		return withMessage(model.KindInvalidReference, se.Field, cause)
	case database.KindDuplicate:
		return withMessage(model.KindDuplicateKey, se.Field, cause)
	case database.KindPrivilege:
		return withMessage(model.KindNotAuthorized, "", cause)
	case database.KindSession:
		return withMessage(model.KindSessionInvalid, "", cause)
	default:
		return withMessage(model.KindUnknown, "", cause)
	}
}

func withMessage(kind model.ErrorKind, field string, cause error) *model.Error {
	return &model.Error{
		Kind:    kind,
		Field:   field,
		Message: Message(kind, field),
		Err:     cause,
	}
}

// Kind is shorthand for Classify(err).Kind; nil yields "".
func Kind(err error) model.ErrorKind {
	if c := Classify(err); c != nil {
		return c.Kind
	}
	return ""
}
