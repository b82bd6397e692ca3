package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/model"
)

var _ roleRepo = &roleRepoMock{}

type roleRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*model.Role, error)
	ListPermissionsFunc func(ctx context.Context, roleID uuid.UUID) ([]model.Permission, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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

func (mock *roleRepoMock) ListPermissions(ctx context.Context, roleID uuid.UUID) ([]model.Permission, error) {
	if mock.ListPermissionsFunc == nil {
		panic("roleRepoMock.ListPermissionsFunc: method is nil but roleRepo.ListPermissions was just called")
	}
	return mock.ListPermissionsFunc(ctx, roleID)
}
