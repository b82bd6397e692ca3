// Package role manages roles and the permissions they grant.
package role

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/database/repository/roles"
	"github.com/heartmarshall/casedesk/internal/guard"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Filter selects roles in List.
type Filter = roles.Filter

type roleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	List(ctx context.Context, filter roles.Filter, page model.PageRequest) (model.PageResult[model.Role], error)
	Create(ctx context.Context, role *model.Role) (*model.Role, error)
	Update(ctx context.Context, id uuid.UUID, role *model.Role) (*model.Role, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListPermissions(ctx context.Context, roleID uuid.UUID) ([]model.Permission, error)
	ReplacePermissions(ctx context.Context, roleID uuid.UUID, perms []model.Permission) ([]model.Permission, error)
}

type integrityGuard interface {
	Check(ctx context.Context, plan guard.Plan) error
	CheckDependents(ctx context.Context, deps []guard.Dependent, id uuid.UUID) error
}

type auditRecorder interface {
	Record(ctx context.Context, ev audit.Event)
}

var dependents = []guard.Dependent{
	{Table: "actors", Column: "role_id"},
}

// Service implements the role operations.
type Service struct {
	log   *slog.Logger
	roles roleRepo
	guard integrityGuard
	audit auditRecorder
}

// NewService creates a new role service.
func NewService(log *slog.Logger, roles roleRepo, g integrityGuard, recorder auditRecorder) *Service {
	return &Service{
		log:   log.With("service", "role"),
		roles: roles,
		guard: g,
		audit: recorder,
	}
}

func requireUnrestricted(scope access.Scope) error {
	if scope.IsRestricted() {
		return model.NotAuthorized("roles can only be changed by an administrator")
	}
	return nil
}

func uniqueName(name string) guard.Unique {
	return guard.Unique{Field: "name", Table: "roles", Column: "name", Value: name}
}
