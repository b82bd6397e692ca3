// Package audit records mutations best-effort and serves audit queries,
// aggregate stats and exports with an explicit degraded signal.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/metrics"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Event describes one audited access.
type Event struct {
	Table       string
	Operation   model.AuditOperation
	RecordID    uuid.UUID
	ActorID     uuid.UUID
	Before      any
	After       any
	Description string
}

// Failure is one audit write that was lost.
type Failure struct {
	Event  Event
	Reason string
	Err    string
	At     time.Time
}

type entryStore interface {
	Create(ctx context.Context, entry *model.AuditEntry) (*model.AuditEntry, error)
}

const defaultFailureLogSize = 100

// Recorder writes audit entries on background goroutines. Failures are
// logged, counted and kept in a bounded in-memory log; they are never
// returned to the caller of Record.
type Recorder struct {
	store   entryStore
	log     *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	wg sync.WaitGroup

	mu          sync.Mutex
	failures    []Failure
	maxFailures int
	written     int
	writtenBy   map[uuid.UUID]int
}

// NewRecorder creates a Recorder. failureLogSize <= 0 uses the default.
func NewRecorder(store entryStore, log *slog.Logger, m *metrics.Metrics, failureLogSize int) *Recorder {
	if failureLogSize <= 0 {
		failureLogSize = defaultFailureLogSize
	}
	return &Recorder{
		store:       store,
		log:         log.With("component", "audit_recorder"),
		metrics:     m,
		now:         time.Now,
		maxFailures: failureLogSize,
		writtenBy:   make(map[uuid.UUID]int),
	}
}

// Record dispatches the write and returns immediately. The write outlives
// cancellation of ctx.
func (r *Recorder) Record(ctx context.Context, ev Event) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.write(context.WithoutCancel(ctx), ev)
	}()
}

// Wait blocks until every dispatched write has finished.
func (r *Recorder) Wait() {
	r.wg.Wait()
}

func (r *Recorder) write(ctx context.Context, ev Event) {
	defer func() {
		if p := recover(); p != nil {
			r.fail(ctx, ev, "panic", fmt.Errorf("panic: %v", p))
		}
	}()

	entry, err := toEntry(ev)
	if err != nil {
		r.fail(ctx, ev, "marshal", err)
		return
	}

	if _, err := r.store.Create(ctx, entry); err != nil {
		r.fail(ctx, ev, "store", err)
		return
	}

	r.mu.Lock()
	r.written++
	if ev.ActorID != uuid.Nil {
		r.writtenBy[ev.ActorID]++
	}
	r.mu.Unlock()

	r.metrics.AuditWritten(ev.Table, string(ev.Operation))
}

func (r *Recorder) fail(ctx context.Context, ev Event, reason string, err error) {
	r.log.WarnContext(ctx, "audit write lost",
		slog.String("table", ev.Table),
		slog.String("operation", string(ev.Operation)),
		slog.String("record_id", ev.RecordID.String()),
		slog.String("reason", reason),
		slog.String("error", err.Error()),
	)
	r.metrics.AuditFailed(ev.Table, string(ev.Operation), reason)

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.failures) == r.maxFailures {
		copy(r.failures, r.failures[1:])
		r.failures = r.failures[:len(r.failures)-1]
	}
	r.failures = append(r.failures, Failure{Event: ev, Reason: reason, Err: err.Error(), At: r.now()})
}

// Failures returns a copy of the retained failure log, oldest first.
func (r *Recorder) Failures() []Failure {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Failure, len(r.failures))
	copy(out, r.failures)
	return out
}

// Written returns how many entries this recorder stored that are visible to scope.
func (r *Recorder) Written(scope access.Scope) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if scope.IsUnrestricted() {
		return r.written
	}
	return r.writtenBy[scope.ActorID()]
}

func toEntry(ev Event) (*model.AuditEntry, error) {
	before, err := model.ToJSON(ev.Before)
	if err != nil {
		return nil, fmt.Errorf("before: %w", err)
	}
	after, err := model.ToJSON(ev.After)
	if err != nil {
		return nil, fmt.Errorf("after: %w", err)
	}

	entry := &model.AuditEntry{
		TableName:   ev.Table,
		Operation:   ev.Operation,
		Before:      before,
		After:       after,
		Description: ev.Description,
	}
	if ev.RecordID != uuid.Nil {
		id := ev.RecordID
		entry.RecordID = &id
	}
	if ev.ActorID != uuid.Nil {
		id := ev.ActorID
		entry.ActorID = &id
	}
	return entry, nil
}
