package audit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/casedesk/internal/access"
	auditrepo "github.com/heartmarshall/casedesk/internal/database/repository/audit"
	"github.com/heartmarshall/casedesk/internal/export"
	"github.com/heartmarshall/casedesk/internal/metrics"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Filter narrows audit queries.
type Filter = auditrepo.Filter

// Bucket is one row of a top-N aggregate.
type Bucket = auditrepo.Bucket

type entryReader interface {
	Query(ctx context.Context, scope access.Scope, filter auditrepo.Filter, page model.PageRequest) (model.PageResult[model.AuditEntry], error)
	ListForExport(ctx context.Context, scope access.Scope, filter auditrepo.Filter, limit int) ([]model.AuditEntry, error)
	CountSince(ctx context.Context, scope access.Scope, since time.Time) (int, error)
	CountActors(ctx context.Context, scope access.Scope) (int, error)
	TopActions(ctx context.Context, scope access.Scope, since time.Time, limit int) ([]auditrepo.Bucket, error)
	TopActors(ctx context.Context, scope access.Scope, since time.Time, limit int) ([]auditrepo.Bucket, error)
	EstimatedRows(ctx context.Context) (int64, error)
}

// writeEvidence reports audit entries known to have been stored.
type writeEvidence interface {
	Written(scope access.Scope) int
}

type eventRecorder interface {
	Record(ctx context.Context, ev Event)
}

// ReaderConfig tunes the read side.
type ReaderConfig struct {
	PlaceholderOnDegraded bool
	ExportMaxRows         int
	StatsTopN             int
	StatsWindow           time.Duration
}

// QueryResult is one page of audit entries. Degraded is set when an
// unfiltered query came back empty although history should exist; it stays
// set when placeholder rows are substituted.
type QueryResult struct {
	Rows        []model.AuditEntry `json:"rows"`
	TotalCount  int                `json:"total_count"`
	Degraded    bool               `json:"degraded"`
	Reason      string             `json:"reason,omitempty"`
	Placeholder bool               `json:"placeholder"`
}

// Stats aggregates the audit trail visible to a scope.
type Stats struct {
	TotalActions      int           `json:"total_actions"`
	TotalActors       int           `json:"total_actors"`
	ActionsToday      int           `json:"actions_today"`
	ActionsThisWindow int           `json:"actions_this_window"`
	Window            time.Duration `json:"window"`
	TopActions        []Bucket      `json:"top_actions"`
	TopActors         []Bucket      `json:"top_actors"`
	Degraded          bool          `json:"degraded"`
	Reason            string        `json:"reason,omitempty"`
	Placeholder       bool          `json:"placeholder"`
}

// ExportResult summarizes an export.
type ExportResult struct {
	Rows     int    `json:"rows"`
	Degraded bool   `json:"degraded"`
	Reason   string `json:"reason,omitempty"`
}

// PlaceholderTable marks substituted rows.
const PlaceholderTable = "(placeholder)"

// Reader serves audit queries, stats and exports.
type Reader struct {
	repo     entryReader
	evidence writeEvidence
	recorder eventRecorder
	log      *slog.Logger
	metrics  *metrics.Metrics
	cfg      ReaderConfig
	now      func() time.Time
}

// NewReader creates a Reader. evidence is usually the process's Recorder.
func NewReader(repo entryReader, evidence writeEvidence, recorder eventRecorder, log *slog.Logger, m *metrics.Metrics, cfg ReaderConfig) *Reader {
	if cfg.ExportMaxRows <= 0 {
		cfg.ExportMaxRows = 10000
	}
	if cfg.StatsTopN <= 0 {
		cfg.StatsTopN = 5
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 7 * 24 * time.Hour
	}
	return &Reader{
		repo:     repo,
		evidence: evidence,
		recorder: recorder,
		log:      log.With("component", "audit_reader"),
		metrics:  m,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Query returns one page of entries visible to scope.
func (r *Reader) Query(ctx context.Context, scope access.Scope, filter Filter, page model.PageRequest) (QueryResult, error) {
	res, err := r.repo.Query(ctx, scope, filter, page)
	if err != nil {
		return QueryResult{}, fmt.Errorf("query audit log: %w", err)
	}

	out := QueryResult{Rows: res.Rows, TotalCount: res.TotalCount}
	if res.TotalCount > 0 || !filter.IsEmpty() {
		return out, nil
	}

	if reason, ok := r.suspectEmpty(ctx, scope); ok {
		r.flag(ctx, "query", scope, reason)
		out.Degraded = true
		out.Reason = reason
		if r.cfg.PlaceholderOnDegraded {
			out.Rows = placeholderRows(r.now())
			out.Placeholder = true
		}
	}
	return out, nil
}

// Stats aggregates entries visible to scope. A zero window uses the configured one.
func (r *Reader) Stats(ctx context.Context, scope access.Scope, window time.Duration) (Stats, error) {
	if window <= 0 {
		window = r.cfg.StatsWindow
	}
	now := r.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	since := now.Add(-window)

	st := Stats{Window: window}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		st.TotalActions, err = r.repo.CountSince(gctx, scope, time.Time{})
		return wrap("total actions", err)
	})
	g.Go(func() (err error) {
		st.TotalActors, err = r.repo.CountActors(gctx, scope)
		return wrap("total actors", err)
	})
	g.Go(func() (err error) {
		st.ActionsToday, err = r.repo.CountSince(gctx, scope, today)
		return wrap("actions today", err)
	})
	g.Go(func() (err error) {
		st.ActionsThisWindow, err = r.repo.CountSince(gctx, scope, since)
		return wrap("actions this window", err)
	})
	g.Go(func() (err error) {
		st.TopActions, err = r.repo.TopActions(gctx, scope, since, r.cfg.StatsTopN)
		return wrap("top actions", err)
	})
	g.Go(func() (err error) {
		st.TopActors, err = r.repo.TopActors(gctx, scope, since, r.cfg.StatsTopN)
		return wrap("top actors", err)
	})

	if err := g.Wait(); err != nil {
		return Stats{}, fmt.Errorf("audit stats: %w", err)
	}

	if st.TotalActions > 0 {
		return st, nil
	}

	if reason, ok := r.suspectEmpty(ctx, scope); ok {
		r.flag(ctx, "stats", scope, reason)
		st.Degraded = true
		st.Reason = reason
		if r.cfg.PlaceholderOnDegraded {
			st.TopActions = []Bucket{{Key: PlaceholderTable, Count: 0}}
			st.TopActors = []Bucket{{Key: PlaceholderTable, Count: 0}}
			st.Placeholder = true
		}
	}
	return st, nil
}

// ExportColumns is the fixed audit export layout.
var ExportColumns = []export.Column[model.AuditEntry]{
	{Header: "id", Value: func(e model.AuditEntry) string { return e.ID.String() }},
	{Header: "created_at", Value: func(e model.AuditEntry) string { return export.Time(e.CreatedAt) }},
	{Header: "table_name", Value: func(e model.AuditEntry) string { return e.TableName }},
	{Header: "operation", Value: func(e model.AuditEntry) string { return string(e.Operation) }},
	{Header: "record_id", Value: func(e model.AuditEntry) string { return export.UUIDPtr(e.RecordID) }},
	{Header: "actor_id", Value: func(e model.AuditEntry) string { return export.UUIDPtr(e.ActorID) }},
	{Header: "description", Value: func(e model.AuditEntry) string { return e.Description }},
	{Header: "before", Value: func(e model.AuditEntry) string { return jsonText(e.Before) }},
	{Header: "after", Value: func(e model.AuditEntry) string { return jsonText(e.After) }},
}

// ExportCSV writes the entries visible to scope as CSV and records the
// export itself as a SELECT entry by actorID.
func (r *Reader) ExportCSV(ctx context.Context, scope access.Scope, actorID uuid.UUID, filter Filter, w io.Writer) (ExportResult, error) {
	rows, err := r.repo.ListForExport(ctx, scope, filter, r.cfg.ExportMaxRows)
	if err != nil {
		return ExportResult{}, fmt.Errorf("list audit log for export: %w", err)
	}

	n, err := export.WriteCSV(w, ExportColumns, rows)
	if err != nil {
		return ExportResult{}, fmt.Errorf("write audit export: %w", err)
	}

	out := ExportResult{Rows: n}
	if n == 0 && filter.IsEmpty() {
		if reason, ok := r.suspectEmpty(ctx, scope); ok {
			r.flag(ctx, "export", scope, reason)
			out.Degraded = true
			out.Reason = reason
		}
	}

	r.recorder.Record(ctx, Event{
		Table:       "audit_log",
		Operation:   model.OperationSelect,
		ActorID:     actorID,
		Description: fmt.Sprintf("exported %d audit entries", n),
	})

	return out, nil
}

// suspectEmpty decides whether an empty result contradicts known history.
func (r *Reader) suspectEmpty(ctx context.Context, scope access.Scope) (string, bool) {
	if r.evidence != nil {
		if n := r.evidence.Written(scope); n > 0 {
			return fmt.Sprintf("%d audit entries were written during this session but none are visible", n), true
		}
	}

	if !scope.IsUnrestricted() {
		return "", false
	}

	est, err := r.repo.EstimatedRows(ctx)
	if err != nil {
		r.log.DebugContext(ctx, "audit row estimate unavailable", slog.String("error", err.Error()))
		return "", false
	}
	if est > 0 {
		return fmt.Sprintf("audit_log holds about %d rows but none are visible", est), true
	}
	return "", false
}

func (r *Reader) flag(ctx context.Context, query string, scope access.Scope, reason string) {
	r.metrics.AuditDegraded(query)
	r.log.WarnContext(ctx, "audit read degraded",
		slog.String("query", query),
		slog.String("scope", scope.String()),
		slog.String("reason", reason),
	)
}

func placeholderRows(now time.Time) []model.AuditEntry {
	return []model.AuditEntry{{
		TableName:   PlaceholderTable,
		Operation:   model.OperationSelect,
		Description: "Placeholder: audit history is currently unavailable.",
		CreatedAt:   now,
	}}
}

func jsonText(j model.JSON) string {
	if j == nil {
		return ""
	}
	v, err := j.Value()
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", what, err)
}
