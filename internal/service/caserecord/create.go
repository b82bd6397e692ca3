package caserecord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/guard"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Create validates input, checks every reference and the case number,
// and only then inserts a case owned by actorID.
func (s *Service) Create(ctx context.Context, actorID uuid.UUID, input CreateInput) (*model.CaseRecord, error) {
	if actorID == uuid.Nil {
		return nil, model.NotAuthorized("an actor is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &model.CaseRecord{
		CaseNumber:          strings.TrimSpace(input.CaseNumber),
		Title:               strings.TrimSpace(input.Title),
		Description:         trimmedOrNil(input.Description),
		OwnerActorID:        actorID,
		AssignedToActorID:   input.AssignedToActorID,
		ApplicationID:       input.ApplicationID,
		OriginID:            input.OriginID,
		PriorityID:          input.PriorityID,
		Status:              input.Status,
		Complexity:          input.Complexity,
		ClassificationScore: input.ClassificationScore,
	}
	if c.Status == "" {
		c.Status = model.CaseStatusOpen
	}
	if c.Complexity == "" {
		c.Complexity = model.ComplexityMedium
	}

	plan := guard.Plan{
		References: references,
		Values: guard.Values{}.
			Set("application_id", c.ApplicationID).
			Set("origin_id", c.OriginID).
			Set("priority_id", c.PriorityID).
			SetOptional("assigned_to_actor_id", c.AssignedToActorID),
		Unique: []guard.Unique{uniqueCaseNumber(c.CaseNumber)},
	}
	if err := s.guard.Check(ctx, plan); err != nil {
		return nil, err
	}

	created, err := s.cases.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "case_records",
		Operation:   model.OperationInsert,
		RecordID:    created.ID,
		ActorID:     actorID,
		After:       created,
		Description: "case " + created.CaseNumber + " created",
	})

	s.log.InfoContext(ctx, "case created",
		slog.String("actor_id", actorID.String()),
		slog.String("case_id", created.ID.String()),
		slog.String("case_number", created.CaseNumber),
	)

	return created, nil
}
