// Package actor manages the operators who sign in to the system.
package actor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/database/repository/actors"
	"github.com/heartmarshall/casedesk/internal/guard"
	"github.com/heartmarshall/casedesk/internal/model"
)

const entity = "actor"

// Filter selects actors in List.
type Filter = actors.Filter

type actorRepo interface {
	Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.Actor, error)
	List(ctx context.Context, scope access.Scope, filter actors.Filter, page model.PageRequest) (model.PageResult[model.Actor], error)
	Create(ctx context.Context, actor *model.Actor) (*model.Actor, error)
	Update(ctx context.Context, id uuid.UUID, actor *model.Actor, scope access.Scope) (*model.Actor, error)
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
	{Field: "role_id", Table: "roles", RequireActive: true},
}

// An actor who owns, is assigned or has booked anything is kept.
var dependents = []guard.Dependent{
	{Table: "case_records", Column: "owner_actor_id"},
	{Table: "case_records", Column: "assigned_to_actor_id"},
	{Table: "todo_records", Column: "assigned_to_actor_id"},
	{Table: "todo_records", Column: "created_by_actor_id"},
	{Table: "time_entries", Column: "owner_actor_id"},
}

// Service implements the actor operations.
type Service struct {
	log      *slog.Logger
	actors   actorRepo
	guard    integrityGuard
	audit    auditRecorder
	hashCost int
}

// NewService creates a new actor service.
func NewService(log *slog.Logger, actors actorRepo, g integrityGuard, recorder auditRecorder) *Service {
	return &Service{
		log:      log.With("service", "actor"),
		actors:   actors,
		guard:    g,
		audit:    recorder,
		hashCost: bcrypt.DefaultCost,
	}
}

func uniqueEmail(email string) guard.Unique {
	return guard.Unique{Field: "email", Table: "actors", Column: "email", CaseInsensitive: true, Value: email}
}
