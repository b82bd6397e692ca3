package role

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/database/repository/roles"
	"github.com/heartmarshall/casedesk/internal/model"
)

var _ roleRepo = &roleRepoMock{}

type roleRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*model.Role, error)
	ListFunc               func(ctx context.Context, filter roles.Filter, page model.PageRequest) (model.PageResult[model.Role], error)
	CreateFunc             func(ctx context.Context, role *model.Role) (*model.Role, error)
	UpdateFunc             func(ctx context.Context, id uuid.UUID, role *model.Role) (*model.Role, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	ListPermissionsFunc    func(ctx context.Context, roleID uuid.UUID) ([]model.Permission, error)
	ReplacePermissionsFunc func(ctx context.Context, roleID uuid.UUID, perms []model.Permission) ([]model.Permission, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter roles.Filter
			Page   model.PageRequest
		}
		Create []struct {
			Ctx  context.Context
			Role *model.Role
		}
		Update []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Role *model.Role
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListPermissions []struct {
			Ctx    context.Context
			RoleID uuid.UUID
		}
		ReplacePermissions []struct {
			Ctx    context.Context
			RoleID uuid.UUID
			Perms  []model.Permission
		}
	}
	lockGetByID sync.RWMutex
	lockList sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
	lockListPermissions sync.RWMutex
	lockReplacePermissions sync.RWMutex
}

func (mock *roleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	if mock.GetByIDFunc == nil {
		panic("roleRepoMock.GetByIDFunc: method is nil but roleRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{ctx, id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *roleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *roleRepoMock) List(ctx context.Context, filter roles.Filter, page model.PageRequest) (model.PageResult[model.Role], error) {
	if mock.ListFunc == nil {
		panic("roleRepoMock.ListFunc: method is nil but roleRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx    context.Context
		Filter roles.Filter
		Page   model.PageRequest
	}{ctx, filter, page})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter, page)
}

func (mock *roleRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter roles.Filter
	Page   model.PageRequest
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *roleRepoMock) Create(ctx context.Context, role *model.Role) (*model.Role, error) {
	if mock.CreateFunc == nil {
		panic("roleRepoMock.CreateFunc: method is nil but roleRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx  context.Context
		Role *model.Role
	}{ctx, role})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, role)
}

func (mock *roleRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Role *model.Role
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *roleRepoMock) Update(ctx context.Context, id uuid.UUID, role *model.Role) (*model.Role, error) {
	if mock.UpdateFunc == nil {
		panic("roleRepoMock.UpdateFunc: method is nil but roleRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx  context.Context
		ID   uuid.UUID
		Role *model.Role
	}{ctx, id, role})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, role)
}

func (mock *roleRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Role *model.Role
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *roleRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("roleRepoMock.DeleteFunc: method is nil but roleRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{ctx, id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *roleRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

func (mock *roleRepoMock) ListPermissions(ctx context.Context, roleID uuid.UUID) ([]model.Permission, error) {
	if mock.ListPermissionsFunc == nil {
		panic("roleRepoMock.ListPermissionsFunc: method is nil but roleRepo.ListPermissions was just called")
	}
	mock.lockListPermissions.Lock()
	mock.calls.ListPermissions = append(mock.calls.ListPermissions, struct {
		Ctx    context.Context
		RoleID uuid.UUID
	}{ctx, roleID})
	mock.lockListPermissions.Unlock()
	return mock.ListPermissionsFunc(ctx, roleID)
}

func (mock *roleRepoMock) ListPermissionsCalls() []struct {
	Ctx    context.Context
	RoleID uuid.UUID
} {
	mock.lockListPermissions.RLock()
	defer mock.lockListPermissions.RUnlock()
	return mock.calls.ListPermissions
}

func (mock *roleRepoMock) ReplacePermissions(ctx context.Context, roleID uuid.UUID, perms []model.Permission) ([]model.Permission, error) {
	if mock.ReplacePermissionsFunc == nil {
		panic("roleRepoMock.ReplacePermissionsFunc: method is nil but roleRepo.ReplacePermissions was just called")
	}
	mock.lockReplacePermissions.Lock()
	mock.calls.ReplacePermissions = append(mock.calls.ReplacePermissions, struct {
		Ctx    context.Context
		RoleID uuid.UUID
		Perms  []model.Permission
	}{ctx, roleID, perms})
	mock.lockReplacePermissions.Unlock()
	return mock.ReplacePermissionsFunc(ctx, roleID, perms)
}

func (mock *roleRepoMock) ReplacePermissionsCalls() []struct {
	Ctx    context.Context
	RoleID uuid.UUID
	Perms  []model.Permission
} {
	mock.lockReplacePermissions.RLock()
	defer mock.lockReplacePermissions.RUnlock()
	return mock.calls.ReplacePermissions
}
