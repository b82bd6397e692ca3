// Package caserecord composes the integrity guard, the case store and the
// audit recorder into the case record operations.
package caserecord

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/database/repository/caserecords"
	"github.com/heartmarshall/casedesk/internal/guard"
	"github.com/heartmarshall/casedesk/internal/model"
)

const entity = "case"

// Filter selects cases in List and ExportCSV.
type Filter = caserecords.Filter

type caseRepo interface {
	Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.CaseRecord, error)
	List(ctx context.Context, scope access.Scope, filter caserecords.Filter, page model.PageRequest) (model.PageResult[model.CaseRecord], error)
	ListForExport(ctx context.Context, scope access.Scope, filter caserecords.Filter, limit int) ([]model.CaseRecord, error)
	Create(ctx context.Context, c *model.CaseRecord) (*model.CaseRecord, error)
	Update(ctx context.Context, id uuid.UUID, c *model.CaseRecord, scope access.Scope) (*model.CaseRecord, error)
	Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error
}

type integrityGuard interface {
	Check(ctx context.Context, plan guard.Plan) error
	CheckDependents(ctx context.Context, deps []guard.Dependent, id uuid.UUID) error
}

type auditRecorder interface {
	Record(ctx context.Context, ev audit.Event)
}

// References are checked in this order; the first failing field is reported.
var references = []guard.Reference{
	{Field: "application_id", Table: "applications", RequireActive: true},
	{Field: "origin_id", Table: "origins", RequireActive: true},
	{Field: "priority_id", Table: "priorities", RequireActive: true},
	{Field: "assigned_to_actor_id", Table: "actors", RequireActive: true},
}

var dependents = []guard.Dependent{
	{Table: "todo_records", Column: "case_id"},
	{Table: "time_entries", Column: "case_id"},
}

// Service implements the case record operations.
type Service struct {
	log           *slog.Logger
	cases         caseRepo
	guard         integrityGuard
	audit         auditRecorder
	exportMaxRows int
}

// NewService creates a new case record service.
func NewService(log *slog.Logger, cases caseRepo, g integrityGuard, recorder auditRecorder, exportMaxRows int) *Service {
	return &Service{
		log:           log.With("service", "caserecord"),
		cases:         cases,
		guard:         g,
		audit:         recorder,
		exportMaxRows: exportMaxRows,
	}
}

func uniqueCaseNumber(number string) guard.Unique {
	return guard.Unique{Field: "case_number", Table: "case_records", Column: "case_number", Value: number}
}
