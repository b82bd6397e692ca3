package timeentry

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/database/repository/timeentries"
	"github.com/heartmarshall/casedesk/internal/model"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetFunc    func(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.TimeEntry, error)
	ListFunc   func(ctx context.Context, scope access.Scope, filter timeentries.Filter, page model.PageRequest) (model.PageResult[model.TimeEntry], error)
	CreateFunc func(ctx context.Context, e *model.TimeEntry) (*model.TimeEntry, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, e *model.TimeEntry, scope access.Scope) (*model.TimeEntry, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID, scope access.Scope) error

	calls struct {
		Get []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Scope access.Scope
		}
		List []struct {
			Ctx    context.Context
			Scope  access.Scope
			Filter timeentries.Filter
			Page   model.PageRequest
		}
		Create []struct {
			Ctx context.Context
			E   *model.TimeEntry
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			E     *model.TimeEntry
			Scope access.Scope
		}
		Delete []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Scope access.Scope
		}
	}
	lockGet sync.RWMutex
	lockList sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *entryRepoMock) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.TimeEntry, error) {
	if mock.GetFunc == nil {
		panic("entryRepoMock.GetFunc: method is nil but entryRepo.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct {
		Ctx   context.Context
		ID    uuid.UUID
		Scope access.Scope
	}{ctx, id, scope})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id, scope)
}

func (mock *entryRepoMock) GetCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Scope access.Scope
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *entryRepoMock) List(ctx context.Context, scope access.Scope, filter timeentries.Filter, page model.PageRequest) (model.PageResult[model.TimeEntry], error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx    context.Context
		Scope  access.Scope
		Filter timeentries.Filter
		Page   model.PageRequest
	}{ctx, scope, filter, page})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope, filter, page)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Scope  access.Scope
	Filter timeentries.Filter
	Page   model.PageRequest
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *entryRepoMock) Create(ctx context.Context, e *model.TimeEntry) (*model.TimeEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		E   *model.TimeEntry
	}{ctx, e})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *model.TimeEntry
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *entryRepoMock) Update(ctx context.Context, id uuid.UUID, e *model.TimeEntry, scope access.Scope) (*model.TimeEntry, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx   context.Context
		ID    uuid.UUID
		E     *model.TimeEntry
		Scope access.Scope
	}{ctx, id, e, scope})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, e, scope)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	E     *model.TimeEntry
	Scope access.Scope
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *entryRepoMock) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx   context.Context
		ID    uuid.UUID
		Scope access.Scope
	}{ctx, id, scope})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id, scope)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Scope access.Scope
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
