package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors at the store boundary. StoreError unwraps to one of them.
var (
	ErrNotFound     = errors.New("database: not found")
	ErrInvalidInput = errors.New("database: invalid input")
	ErrDuplicate    = errors.New("database: duplicate key")
	ErrForeignKey   = errors.New("database: foreign key violation")
	ErrPrivilege    = errors.New("database: insufficient privilege")
	ErrSession      = errors.New("database: session rejected")
	ErrCheck        = errors.New("database: check violation")
)

// ErrorKind is the normalized class of a store error.
type ErrorKind string

const (
	KindDuplicate  ErrorKind = "duplicate"
	KindForeignKey ErrorKind = "foreign_key"
	KindPrivilege  ErrorKind = "privilege"
	KindSession    ErrorKind = "session"
	KindCheck      ErrorKind = "check"
	KindOther      ErrorKind = "other"
)

// SessionInvalidHint is the HINT a server-side procedure sets when it rejects
// the caller's session with RAISE ... USING HINT = 'session_invalid'.
const SessionInvalidHint = "session_invalid"

// StoreError is a PostgreSQL error normalized once at the repository boundary.
type StoreError struct {
	Kind       ErrorKind
	Field      string
	Table      string
	Constraint string
	Code       string
	Message    string
	Err        error
}

func (e *StoreError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("database: %s on %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("database: %s: %s", e.Kind, e.Message)
}

// Unwrap exposes both the kind sentinel and the driver error.
func (e *StoreError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindDuplicate:
		return ErrDuplicate
	case KindForeignKey:
		return ErrForeignKey
	case KindPrivilege:
		return ErrPrivilege
	case KindSession:
		return ErrSession
	case KindCheck:
		return ErrCheck
	default:
		return nil
	}
}

// WrapDBError normalizes driver errors. pgx.ErrNoRows becomes ErrNotFound,
// PostgreSQL errors become *StoreError, context errors and already
// normalized errors pass through unchanged.
func WrapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromPgError(pgErr)
	}

	return err
}

func fromPgError(pgErr *pgconn.PgError) *StoreError {
	se := &StoreError{
		Kind:       classifyCode(pgErr),
		Table:      pgErr.TableName,
		Constraint: pgErr.ConstraintName,
		Code:       pgErr.Code,
		Message:    pgErr.Message,
		Err:        pgErr,
	}
	se.Field = offendingField(pgErr)
	return se
}

func classifyCode(pgErr *pgconn.PgError) ErrorKind {
	switch pgErr.Code {
	case "23505": // unique_violation
		return KindDuplicate
	case "23503": // foreign_key_violation
		return KindForeignKey
	case "42501": // insufficient_privilege
		return KindPrivilege
	case "28000", "28P01": // invalid_authorization_specification, invalid_password
		return KindSession
	case "P0001": // raise_exception
		if pgErr.Hint == SessionInvalidHint {
			return KindSession
		}
		return KindOther
	case "23514", "23502", "22P02": // check_violation, not_null_violation, invalid_text_representation
		return KindCheck
	default:
		return KindOther
	}
}

// keyDetail matches `Key (col)=(...)` and `Key (lower(col::text))=(...)`.
var keyDetail = regexp.MustCompile(`Key \((?:lower\()?([a-zA-Z_][a-zA-Z0-9_]*)`)

var constraintSuffixes = []string{"_fkey", "_key", "_check", "_idx", "_uniq"}

func offendingField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	if m := keyDetail.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
		return m[1]
	}
	return fieldFromConstraint(pgErr.TableName, pgErr.ConstraintName)
}

// fieldFromConstraint derives a column from PostgreSQL's default constraint
// names, e.g. case_records_application_id_fkey -> application_id.
func fieldFromConstraint(table, constraint string) string {
	if constraint == "" {
		return ""
	}
	name := constraint
	if table != "" {
		name = strings.TrimPrefix(name, table+"_")
	}
	for _, suffix := range constraintSuffixes {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}
