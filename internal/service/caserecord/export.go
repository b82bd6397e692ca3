package caserecord

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/export"
	"github.com/heartmarshall/casedesk/internal/model"
)

// ExportColumns is the fixed case export layout.
var ExportColumns = []export.Column[model.CaseRecord]{
	{Header: "id", Value: func(c model.CaseRecord) string { return c.ID.String() }},
	{Header: "case_number", Value: func(c model.CaseRecord) string { return c.CaseNumber }},
	{Header: "title", Value: func(c model.CaseRecord) string { return c.Title }},
	{Header: "status", Value: func(c model.CaseRecord) string { return string(c.Status) }},
	{Header: "complexity", Value: func(c model.CaseRecord) string { return string(c.Complexity) }},
	{Header: "classification_score", Value: func(c model.CaseRecord) string { return export.Float(c.ClassificationScore) }},
	{Header: "owner_actor_id", Value: func(c model.CaseRecord) string { return c.OwnerActorID.String() }},
	{Header: "assigned_to_actor_id", Value: func(c model.CaseRecord) string { return export.UUIDPtr(c.AssignedToActorID) }},
	{Header: "application_id", Value: func(c model.CaseRecord) string { return c.ApplicationID.String() }},
	{Header: "origin_id", Value: func(c model.CaseRecord) string { return c.OriginID.String() }},
	{Header: "priority_id", Value: func(c model.CaseRecord) string { return c.PriorityID.String() }},
	{Header: "description", Value: func(c model.CaseRecord) string { return export.StringPtr(c.Description) }},
	{Header: "created_at", Value: func(c model.CaseRecord) string { return export.Time(c.CreatedAt) }},
	{Header: "updated_at", Value: func(c model.CaseRecord) string { return export.Time(c.UpdatedAt) }},
}

// ExportCSV writes the cases visible to scope as CSV, ordered by case number
// and capped at the configured row limit, and records the export.
func (s *Service) ExportCSV(ctx context.Context, scope access.Scope, actorID uuid.UUID, filter Filter, w io.Writer) (int, error) {
	rows, err := s.cases.ListForExport(ctx, scope, filter, s.exportMaxRows)
	if err != nil {
		return 0, fmt.Errorf("list cases for export: %w", err)
	}

	n, err := export.WriteCSV(w, ExportColumns, rows)
	if err != nil {
		return 0, fmt.Errorf("write case export: %w", err)
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "case_records",
		Operation:   model.OperationSelect,
		ActorID:     actorID,
		Description: "exported " + strconv.Itoa(n) + " cases",
	})

	return n, nil
}
