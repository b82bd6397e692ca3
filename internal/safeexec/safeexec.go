// Package safeexec runs one caller operation behind session revalidation,
// an optional capability gate and error classification.
package safeexec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/classify"
	"github.com/heartmarshall/casedesk/internal/metrics"
	"github.com/heartmarshall/casedesk/internal/model"
)

type sessions interface {
	Validate(ctx context.Context) (*access.Principal, error)
	Invalidate()
}

// Executor carries the dependencies shared by every Run.
type Executor struct {
	sessions sessions
	log      *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

// New creates an Executor.
func New(s sessions, log *slog.Logger, m *metrics.Metrics) *Executor {
	return &Executor{
		sessions: s,
		log:      log.With("component", "safeexec"),
		metrics:  m,
		now:      time.Now,
	}
}

// Result is the outcome of Run. Err is nil on success.
type Result[T any] struct {
	Value T
	Err   *model.Error
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool { return r.Err == nil }

// Unwrap returns the value and the classified error as a plain error.
func (r Result[T]) Unwrap() (T, error) {
	if r.Err != nil {
		return r.Value, r.Err
	}
	return r.Value, nil
}

type options struct {
	name       string
	capability *access.Capability
}

// Option configures one Run.
type Option func(*options)

// Require gates the operation on a (module, action) capability.
func Require(module, action string) Option {
	return func(o *options) {
		o.capability = &access.Capability{Module: module, Action: action}
	}
}

// Named labels the operation in logs.
func Named(name string) Option {
	return func(o *options) { o.name = name }
}

// Op is a caller operation. It receives the freshly validated principal.
type Op[T any] func(ctx context.Context, p *access.Principal) (T, error)

// Run revalidates the session, checks the capability gate, runs op and
// classifies any failure. It never panics and never returns a bare error.
func Run[T any](ctx context.Context, ex *Executor, op Op[T], opts ...Option) (res Result[T]) {
	o := options{name: "operation"}
	for _, opt := range opts {
		opt(&o)
	}

	start := ex.now()
	defer func() {
		result := "ok"
		if res.Err != nil {
			result = string(res.Err.Kind)
		}
		ex.metrics.ObserveOperation(result, ex.now().Sub(start).Seconds())
	}()

	p, err := ex.sessions.Validate(ctx)
	if err != nil {
		ex.sessions.Invalidate()
		res.Err = sessionFailure(err)
		ex.report(ctx, o.name, res.Err, err)
		return res
	}

	if c := o.capability; c != nil && !p.Can(c.Module, c.Action) {
		res.Err = classify.Classify(model.NotAuthorized(fmt.Sprintf("%s:%s is not granted", c.Module, c.Action)))
		ex.report(ctx, o.name, res.Err, nil)
		return res
	}

	v, err := invoke(ctx, op, p)
	if err != nil {
		res.Err = classify.Classify(err)
		if res.Err.Kind == model.KindSessionInvalid {
			ex.sessions.Invalidate()
		}
		ex.report(ctx, o.name, res.Err, err)
		return res
	}

	res.Value = v
	return res
}

func invoke[T any](ctx context.Context, op Op[T], p *access.Principal) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return op(ctx, p)
}

func sessionFailure(err error) *model.Error {
	var e *model.Error
	if errors.As(err, &e) && e.Kind == model.KindSessionInvalid {
		return classify.Classify(e)
	}
	out := model.SessionInvalid("session could not be validated")
	out.Err = err
	return classify.Classify(out)
}

func (ex *Executor) report(ctx context.Context, name string, e *model.Error, cause error) {
	ex.metrics.OperationFailed(string(e.Kind))

	attrs := []any{
		slog.String("operation", name),
		slog.String("kind", string(e.Kind)),
	}
	if e.Field != "" {
		attrs = append(attrs, slog.String("field", e.Field))
	}
	if cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
	}

	if e.Kind == model.KindUnknown {
		ex.log.ErrorContext(ctx, "operation failed", attrs...)
		return
	}
	ex.log.InfoContext(ctx, "operation rejected", attrs...)
}
