// Package roles implements the roles and permissions repositories.
package roles

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/database"
	"github.com/heartmarshall/casedesk/internal/database/repository/base"
	"github.com/heartmarshall/casedesk/internal/database/schema"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Filter narrows a role listing.
type Filter struct {
	Search   string
	IsActive *bool
}

var sortColumns = base.SortColumns{
	"name":       schema.Roles.RoleName.Qualified(),
	"created_at": schema.Roles.CreatedAt.Qualified(),
}

// RoleRepository provides role and permission persistence.
type RoleRepository struct {
	*base.Base[model.Role]
	perms *base.Base[model.Permission]
}

// NewRoleRepository creates a new role repository.
func NewRoleRepository(q database.Querier) *RoleRepository {
	return &RoleRepository{
		Base: base.MustNewBase[model.Role](q, base.Config{
			Table:   schema.Roles.Name.String(),
			Columns: schema.Roles.Columns(),
		}),
		perms: base.MustNewBase[model.Permission](q, base.Config{
			Table:   schema.Permissions.Name.String(),
			Columns: schema.Permissions.Columns(),
		}),
	}
}

// GetByID returns a role.
func (r *RoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	return r.Base.GetByID(ctx, schema.Roles.ID.Qualified(), id)
}

// List returns one page of roles. Roles are reference data visible to every scope.
func (r *RoleRepository) List(ctx context.Context, filter Filter, page model.PageRequest) (model.PageResult[model.Role], error) {
	query := r.SelectBuilder()
	if s := strings.TrimSpace(filter.Search); s != "" {
		query = query.Where(base.ILikeAny(s, schema.Roles.RoleName.Qualified()))
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{schema.Roles.IsActive.Qualified(): *filter.IsActive})
	}
	return r.Page(ctx, query, page, sortColumns.OrderBy(page, schema.Roles.RoleName.Qualified(), schema.Roles.ID.Qualified())...)
}

// Create inserts a role.
func (r *RoleRepository) Create(ctx context.Context, role *model.Role) (*model.Role, error) {
	if role == nil {
		return nil, fmt.Errorf("%w: role is required", database.ErrInvalidInput)
	}
	if err := base.ValidateString(role.Name, "name"); err != nil {
		return nil, err
	}

	insert := r.InsertBuilder().
		Columns(schema.Roles.InsertColumns()...).
		Values(role.Name, role.Description, role.IsAdmin, role.IsActive)

	return r.InsertReturning(ctx, insert)
}

// Update overwrites the mutable fields of a role.
func (r *RoleRepository) Update(ctx context.Context, id uuid.UUID, role *model.Role) (*model.Role, error) {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("%w: role is required", database.ErrInvalidInput)
	}

	update := r.UpdateBuilder().
		Set(schema.Roles.RoleName.Bare(), role.Name).
		Set(schema.Roles.Description.Bare(), role.Description).
		Set(schema.Roles.IsAdmin.Bare(), role.IsAdmin).
		Set(schema.Roles.IsActive.Bare(), role.IsActive).
		Set(schema.Roles.UpdatedAt.Bare(), squirrel.Expr("now()")).
		Where(squirrel.Eq{schema.Roles.ID.Qualified(): id})

	return r.Base.Update(ctx, update)
}

// Delete removes a role. Its permissions cascade.
func (r *RoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := base.ValidateUUID(id, "id"); err != nil {
		return err
	}
	return r.Base.Delete(ctx, schema.Roles.ID.Qualified(), id)
}

// ============================================================================
// PERMISSIONS
// ============================================================================

// ListPermissions returns the permissions of a role ordered by module and action.
func (r *RoleRepository) ListPermissions(ctx context.Context, roleID uuid.UUID) ([]model.Permission, error) {
	if err := base.ValidateUUID(roleID, "role_id"); err != nil {
		return nil, err
	}
	query := r.perms.SelectBuilder().
		Where(squirrel.Eq{schema.Permissions.RoleID.Qualified(): roleID}).
		OrderBy(schema.Permissions.Module.Qualified()+" ASC", schema.Permissions.Action.Qualified()+" ASC")
	return r.perms.List(ctx, query)
}

// ReplacePermissions deletes every permission of the role and inserts perms.
// The two statements are not atomic.
func (r *RoleRepository) ReplacePermissions(ctx context.Context, roleID uuid.UUID, perms []model.Permission) ([]model.Permission, error) {
	if err := base.ValidateUUID(roleID, "role_id"); err != nil {
		return nil, err
	}

	for _, p := range perms {
		if err := base.ValidateString(p.Module, "module"); err != nil {
			return nil, err
		}
		if err := base.ValidateString(p.Action, "action"); err != nil {
			return nil, err
		}
	}

	del := r.perms.DeleteBuilder().Where(squirrel.Eq{schema.Permissions.RoleID.Qualified(): roleID})
	sql, args, err := del.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete permissions: %w", err)
	}
	if _, err := r.Q().Exec(ctx, sql, args...); err != nil {
		return nil, database.WrapDBError(err)
	}

	if len(perms) == 0 {
		return []model.Permission{}, nil
	}

	insert := r.perms.InsertBuilder().Columns(schema.Permissions.InsertColumns()...)
	for _, p := range perms {
		insert = insert.Values(roleID, p.Module, p.Action)
	}
	insert = insert.Suffix("ON CONFLICT (role_id, module, action) DO NOTHING RETURNING " +
		strings.Join(schema.Permissions.Columns(), ", "))

	sql, args, err = insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert permissions: %w", err)
	}

	out := make([]model.Permission, 0, len(perms))
	if err := r.perms.QueryRaw(ctx, &out, sql, args...); err != nil {
		return nil, err
	}
	return out, nil
}
