package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/database/repository/catalogs"
	"github.com/heartmarshall/casedesk/internal/database/schema"
	"github.com/heartmarshall/casedesk/internal/model"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	Table schema.CatalogTable

	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error)
	ListFunc    func(ctx context.Context, filter catalogs.Filter, page model.PageRequest) (model.PageResult[model.CatalogItem], error)
	CreateFunc  func(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, item *model.CatalogItem) (*model.CatalogItem, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter catalogs.Filter
			Page   model.PageRequest
		}
		Create []struct {
			Ctx  context.Context
			Item *model.CatalogItem
		}
		Update []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Item *model.CatalogItem
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{ctx, id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *itemRepoMock) List(ctx context.Context, filter catalogs.Filter, page model.PageRequest) (model.PageResult[model.CatalogItem], error) {
	if mock.ListFunc == nil {
		panic("itemRepoMock.ListFunc: method is nil but itemRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx    context.Context
		Filter catalogs.Filter
		Page   model.PageRequest
	}{ctx, filter, page})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter, page)
}

func (mock *itemRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter catalogs.Filter
	Page   model.PageRequest
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *itemRepoMock) Create(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx  context.Context
		Item *model.CatalogItem
	}{ctx, item})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *model.CatalogItem
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *itemRepoMock) Update(ctx context.Context, id uuid.UUID, item *model.CatalogItem) (*model.CatalogItem, error) {
	if mock.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx  context.Context
		ID   uuid.UUID
		Item *model.CatalogItem
	}{ctx, id, item})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, item)
}

func (mock *itemRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Item *model.CatalogItem
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *itemRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{ctx, id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *itemRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

func (mock *itemRepoMock) Schema() schema.CatalogTable { return mock.Table }
