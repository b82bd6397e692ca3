package caserecord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Delete removes a case visible to scope. Cases with todos or time entries
// are kept and DependencyExists is returned.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	old, err := s.cases.Get(ctx, id, scope)
	if err != nil {
		return fmt.Errorf("get case: %w", scope.Deny(entity, err))
	}

	if err := s.guard.CheckDependents(ctx, dependents, id); err != nil {
		return err
	}

	if err := s.cases.Delete(ctx, id, scope); err != nil {
		return fmt.Errorf("delete case: %w", scope.Deny(entity, err))
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "case_records",
		Operation:   model.OperationDelete,
		RecordID:    id,
		ActorID:     scope.ActorID(),
		Before:      old,
		Description: "case " + old.CaseNumber + " deleted",
	})

	s.log.InfoContext(ctx, "case deleted",
		slog.String("case_id", id.String()),
		slog.String("case_number", old.CaseNumber),
	)

	return nil
}
