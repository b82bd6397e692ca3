// Package archive drives the server-side archive and retention procedures.
// The state transitions live in the database; this package supplies
// structured parameters and returns the procedure's result.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Procedure names.
const (
	ProcArchiveCase    = "archive_case"
	ProcRestoreCase    = "restore_case"
	ProcBulkArchive    = "bulk_archive_cases"
	ProcCanArchive     = "can_archive_case"
	ProcSearchArchived = "search_archived_cases"
)

const maxBulkCases = 500

type procedureCaller interface {
	Call(ctx context.Context, name string, params map[string]any, dst any) error
}

type auditRecorder interface {
	Record(ctx context.Context, ev audit.Event)
}

// Result is what every procedure returns. Error is set when Success is false.
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Decode unmarshals Data into dst.
func (r Result) Decode(dst any) error {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(r.Data, dst); err != nil {
		return fmt.Errorf("decode procedure data: %w", err)
	}
	return nil
}

// Check reports whether a case may be archived and why not.
type Check struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// SearchParams filters archived cases.
type SearchParams struct {
	Query string
	From  string // inclusive date, YYYY-MM-DD
	To    string
	Page  model.PageRequest
}

// Service calls the archive procedures on behalf of an actor.
type Service struct {
	log   *slog.Logger
	procs procedureCaller
	audit auditRecorder
}

// NewService creates a new archive service.
func NewService(log *slog.Logger, procs procedureCaller, recorder auditRecorder) *Service {
	return &Service{
		log:   log.With("service", "archive"),
		procs: procs,
		audit: recorder,
	}
}

// ArchiveCase moves a case to the archive.
func (s *Service) ArchiveCase(ctx context.Context, actorID, caseID uuid.UUID, reason string) (Result, error) {
	if caseID == uuid.Nil {
		return Result{}, model.Validation("case_id", "required")
	}
	res, err := s.call(ctx, ProcArchiveCase, map[string]any{
		"p_actor_id": actorID,
		"p_case_id":  caseID,
		"p_reason":   strings.TrimSpace(reason),
	})
	if err != nil {
		return Result{}, err
	}
	if res.Success {
		s.record(ctx, actorID, caseID, "case archived")
	}
	return res, nil
}

// RestoreCase brings an archived case back.
func (s *Service) RestoreCase(ctx context.Context, actorID, caseID uuid.UUID) (Result, error) {
	if caseID == uuid.Nil {
		return Result{}, model.Validation("case_id", "required")
	}
	res, err := s.call(ctx, ProcRestoreCase, map[string]any{
		"p_actor_id": actorID,
		"p_case_id":  caseID,
	})
	if err != nil {
		return Result{}, err
	}
	if res.Success {
		s.record(ctx, actorID, caseID, "case restored")
	}
	return res, nil
}

// BulkArchive archives several cases in one procedure call. Duplicate ids
// are sent once.
func (s *Service) BulkArchive(ctx context.Context, actorID uuid.UUID, caseIDs []uuid.UUID, reason string) (Result, error) {
	ids := make([]uuid.UUID, 0, len(caseIDs))
	seen := make(map[uuid.UUID]struct{}, len(caseIDs))
	for _, id := range caseIDs {
		if id == uuid.Nil {
			return Result{}, model.Validation("case_ids", "must not contain an empty id")
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	switch {
	case len(ids) == 0:
		return Result{}, model.Validation("case_ids", "at least one case is required")
	case len(ids) > maxBulkCases:
		return Result{}, model.Validation("case_ids", fmt.Sprintf("at most %d cases per call", maxBulkCases))
	}

	idArgs := make([]string, len(ids))
	for i, id := range ids {
		idArgs[i] = id.String()
	}
	res, err := s.call(ctx, ProcBulkArchive, map[string]any{
		"p_actor_id": actorID,
		"p_case_ids": idArgs,
		"p_reason":   strings.TrimSpace(reason),
	})
	if err != nil {
		return Result{}, err
	}
	if res.Success {
		s.audit.Record(ctx, audit.Event{
			Table:       "case_records",
			Operation:   model.OperationUpdate,
			ActorID:     actorID,
			After:       map[string]any{"case_ids": ids},
			Description: fmt.Sprintf("%d cases archived", len(ids)),
		})
	}
	return res, nil
}

// CanArchive asks the store whether actorID may archive caseID.
func (s *Service) CanArchive(ctx context.Context, actorID, caseID uuid.UUID) (Check, error) {
	if caseID == uuid.Nil {
		return Check{}, model.Validation("case_id", "required")
	}
	res, err := s.call(ctx, ProcCanArchive, map[string]any{
		"p_actor_id": actorID,
		"p_case_id":  caseID,
	})
	if err != nil {
		return Check{}, err
	}
	if !res.Success {
		return Check{Allowed: false, Reason: res.Error}, nil
	}
	var c Check
	if err := res.Decode(&c); err != nil {
		return Check{}, err
	}
	return c, nil
}

// SearchArchived lists archived cases matching params.
func (s *Service) SearchArchived(ctx context.Context, actorID uuid.UUID, params SearchParams) (Result, error) {
	page := params.Page.Normalize()
	args := map[string]any{
		"p_actor_id": actorID,
		"p_limit":    page.PageSize,
		"p_offset":   page.Offset(),
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		args["p_query"] = q
	}
	if params.From != "" {
		args["p_from"] = params.From
	}
	if params.To != "" {
		args["p_to"] = params.To
	}
	return s.call(ctx, ProcSearchArchived, args)
}

func (s *Service) call(ctx context.Context, name string, params map[string]any) (Result, error) {
	var res Result
	if err := s.procs.Call(ctx, name, params, &res); err != nil {
		return Result{}, fmt.Errorf("call %s: %w", name, err)
	}
	if !res.Success {
		s.log.InfoContext(ctx, "procedure declined",
			slog.String("procedure", name),
			slog.String("error", res.Error),
		)
	}
	return res, nil
}

func (s *Service) record(ctx context.Context, actorID, caseID uuid.UUID, desc string) {
	s.audit.Record(ctx, audit.Event{
		Table:       "case_records",
		Operation:   model.OperationUpdate,
		RecordID:    caseID,
		ActorID:     actorID,
		Description: desc,
	})
}
