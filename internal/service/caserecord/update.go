package caserecord

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

// Update changes the fields set in input on a case visible to scope.
// Only references and the case number that actually change are re-checked.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput, scope access.Scope) (*model.CaseRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, err := s.cases.Get(ctx, id, scope)
	if err != nil {
		return nil, fmt.Errorf("get case: %w", scope.Deny(entity, err))
	}

	next := *old
	values := guard.Values{}
	var unique []guard.Unique

	if input.CaseNumber != nil {
		next.CaseNumber = strings.TrimSpace(*input.CaseNumber)
		if next.CaseNumber != old.CaseNumber {
			unique = append(unique, uniqueCaseNumber(next.CaseNumber))
		}
	}
	if input.Title != nil {
		next.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		next.Description = trimmedOrNil(input.Description)
	}
	if input.UnassignActor {
		next.AssignedToActorID = nil
	}
	if input.AssignedToActorID != nil {
		next.AssignedToActorID = input.AssignedToActorID
		if old.AssignedToActorID == nil || *old.AssignedToActorID != *input.AssignedToActorID {
			values.Set("assigned_to_actor_id", *input.AssignedToActorID)
		}
	}
	if input.ApplicationID != nil {
		next.ApplicationID = *input.ApplicationID
		if next.ApplicationID != old.ApplicationID {
			values.Set("application_id", next.ApplicationID)
		}
	}
	if input.OriginID != nil {
		next.OriginID = *input.OriginID
		if next.OriginID != old.OriginID {
			values.Set("origin_id", next.OriginID)
		}
	}
	if input.PriorityID != nil {
		next.PriorityID = *input.PriorityID
		if next.PriorityID != old.PriorityID {
			values.Set("priority_id", next.PriorityID)
		}
	}
	if input.Status != nil {
		next.Status = *input.Status
	}
	if input.Complexity != nil {
		next.Complexity = *input.Complexity
	}
	if input.ClassificationScore != nil {
		next.ClassificationScore = *input.ClassificationScore
	}

	if len(values) > 0 || len(unique) > 0 {
		plan := guard.Plan{References: references, Values: values, Unique: unique, ExcludeID: id}
		if err := s.guard.Check(ctx, plan); err != nil {
			return nil, err
		}
	}

	updated, err := s.cases.Update(ctx, id, &next, scope)
	if err != nil {
		return nil, fmt.Errorf("update case: %w", scope.Deny(entity, err))
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "case_records",
		Operation:   model.OperationUpdate,
		RecordID:    id,
		ActorID:     scope.ActorID(),
		Before:      old,
		After:       updated,
		Description: "case " + updated.CaseNumber + " updated",
	})

	s.log.InfoContext(ctx, "case updated",
		slog.String("case_id", id.String()),
		slog.String("scope", scope.String()),
	)

	return updated, nil
}
