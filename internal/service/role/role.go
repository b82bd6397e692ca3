package role

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

// Get returns one role.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	r, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", access.Unrestricted.Deny("role", err))
	}
	return r, nil
}

// List returns one page of roles ordered by name.
func (s *Service) List(ctx context.Context, filter Filter, page model.PageRequest) (model.PageResult[model.Role], error) {
	res, err := s.roles.List(ctx, filter, page.Normalize())
	if err != nil {
		return model.PageResult[model.Role]{}, fmt.Errorf("list roles: %w", err)
	}
	return res, nil
}

// Create inserts a role. New roles are active and not admin unless input says otherwise.
func (s *Service) Create(ctx context.Context, scope access.Scope, input Input) (*model.Role, error) {
	if err := requireUnrestricted(scope); err != nil {
		return nil, err
	}
	if err := input.Validate(true); err != nil {
		return nil, err
	}

	r := &model.Role{
		Name:        strings.TrimSpace(*input.Name),
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsAdmin != nil {
		r.IsAdmin = *input.IsAdmin
	}
	if input.IsActive != nil {
		r.IsActive = *input.IsActive
	}

	if err := s.guard.Check(ctx, guard.Plan{Unique: []guard.Unique{uniqueName(r.Name)}}); err != nil {
		return nil, err
	}

	created, err := s.roles.Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "roles",
		Operation:   model.OperationInsert,
		RecordID:    created.ID,
		ActorID:     scope.ActorID(),
		After:       created,
		Description: "role " + created.Name + " created",
	})
	s.log.InfoContext(ctx, "role created",
		slog.String("role_id", created.ID.String()),
		slog.String("name", created.Name),
		slog.Bool("is_admin", created.IsAdmin),
	)

	return created, nil
}

// Update changes the fields set in input.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input, scope access.Scope) (*model.Role, error) {
	if err := requireUnrestricted(scope); err != nil {
		return nil, err
	}
	if err := input.Validate(false); err != nil {
		return nil, err
	}

	old, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", scope.Deny("role", err))
	}

	next := *old
	if input.Name != nil {
		next.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		next.Description = input.Description
	}
	if input.IsAdmin != nil {
		next.IsAdmin = *input.IsAdmin
	}
	if input.IsActive != nil {
		next.IsActive = *input.IsActive
	}

	if next.Name != old.Name {
		if err := s.guard.Check(ctx, guard.Plan{Unique: []guard.Unique{uniqueName(next.Name)}, ExcludeID: id}); err != nil {
			return nil, err
		}
	}

	updated, err := s.roles.Update(ctx, id, &next)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", scope.Deny("role", err))
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "roles",
		Operation:   model.OperationUpdate,
		RecordID:    id,
		ActorID:     scope.ActorID(),
		Before:      old,
		After:       updated,
		Description: "role " + updated.Name + " updated",
	})
	s.log.InfoContext(ctx, "role updated", slog.String("role_id", id.String()))

	return updated, nil
}

// Delete removes a role no actor holds. Its permissions go with it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	if err := requireUnrestricted(scope); err != nil {
		return err
	}

	old, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get role: %w", scope.Deny("role", err))
	}
	if err := s.guard.CheckDependents(ctx, dependents, id); err != nil {
		return err
	}
	if err := s.roles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete role: %w", scope.Deny("role", err))
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "roles",
		Operation:   model.OperationDelete,
		RecordID:    id,
		ActorID:     scope.ActorID(),
		Before:      old,
		Description: "role " + old.Name + " deleted",
	})
	s.log.InfoContext(ctx, "role deleted", slog.String("role_id", id.String()))

	return nil
}

// Capabilities returns what the role grants.
func (s *Service) Capabilities(ctx context.Context, roleID uuid.UUID) ([]access.Capability, error) {
	perms, err := s.roles.ListPermissions(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	out := make([]access.Capability, len(perms))
	for i, p := range perms {
		out[i] = access.Capability{Module: p.Module, Action: p.Action}
	}
	return out, nil
}

// SetPermissions replaces the role's permissions with caps.
func (s *Service) SetPermissions(ctx context.Context, roleID uuid.UUID, caps []access.Capability, scope access.Scope) ([]access.Capability, error) {
	if err := requireUnrestricted(scope); err != nil {
		return nil, err
	}
	caps, err := normalizeCapabilities(caps)
	if err != nil {
		return nil, err
	}

	r, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", scope.Deny("role", err))
	}
	before, err := s.Capabilities(ctx, roleID)
	if err != nil {
		return nil, err
	}

	perms := make([]model.Permission, len(caps))
	for i, c := range caps {
		perms[i] = model.Permission{RoleID: roleID, Module: c.Module, Action: c.Action}
	}
	if _, err := s.roles.ReplacePermissions(ctx, roleID, perms); err != nil {
		return nil, fmt.Errorf("replace permissions: %w", err)
	}

	s.audit.Record(ctx, audit.Event{
		Table:       "permissions",
		Operation:   model.OperationUpdate,
		RecordID:    roleID,
		ActorID:     scope.ActorID(),
		Before:      map[string]any{"permissions": capabilityStrings(before)},
		After:       map[string]any{"permissions": capabilityStrings(caps)},
		Description: "permissions of role " + r.Name + " replaced",
	})
	s.log.InfoContext(ctx, "role permissions replaced",
		slog.String("role_id", roleID.String()),
		slog.Int("count", len(caps)),
	)

	return caps, nil
}

func capabilityStrings(caps []access.Capability) []string {
	out := make([]string, len(caps))
	for i, c := range caps {
		out[i] = c.Module + ":" + c.Action
	}
	return out
}
