// Package todo implements todo record operations.
package todo

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/database/repository/todos"
	"github.com/heartmarshall/casedesk/internal/guard"
	"github.com/heartmarshall/casedesk/internal/model"
)

const entity = "todo"

// Filter selects todos in List.
type Filter = todos.Filter

type todoRepo interface {
	Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.TodoRecord, error)
	List(ctx context.Context, scope access.Scope, filter todos.Filter, page model.PageRequest) (model.PageResult[model.TodoRecord], error)
	Create(ctx context.Context, t *model.TodoRecord) (*model.TodoRecord, error)
	Update(ctx context.Context, id uuid.UUID, t *model.TodoRecord, scope access.Scope) (*model.TodoRecord, error)
	Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error
}

type integrityGuard interface {
	Check(ctx context.Context, plan guard.Plan) error
	CheckDependents(ctx context.Context, deps []guard.Dependent, id uuid.UUID) error
}

type auditRecorder interface {
	Record(ctx context.Context, ev audit.Event)
}

var references = []guard.Reference{
	{Field: "priority_id", Table: "priorities", RequireActive: true},
	{Field: "assigned_to_actor_id", Table: "actors", RequireActive: true},
	{Field: "case_id", Table: "case_records", OwnerColumns: caseOwnerColumns},
}

// caseOwnerColumns limit the cases a todo may link to the caller's scope.
var caseOwnerColumns = []string{"owner_actor_id", "assigned_to_actor_id"}

var dependents = []guard.Dependent{
	{Table: "time_entries", Column: "todo_id"},
}

// Service implements the todo operations.
type Service struct {
	log   *slog.Logger
	todos todoRepo
	guard integrityGuard
	audit auditRecorder
}

// NewService creates a new todo service.
func NewService(log *slog.Logger, todos todoRepo, g integrityGuard, recorder auditRecorder) *Service {
	return &Service{
		log:   log.With("service", "todo"),
		todos: todos,
		guard: g,
		audit: recorder,
	}
}
