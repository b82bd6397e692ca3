package todo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/database/repository/todos"
	"github.com/heartmarshall/casedesk/internal/model"
)

var _ todoRepo = &todoRepoMock{}

type todoRepoMock struct {
	GetFunc    func(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.TodoRecord, error)
	ListFunc   func(ctx context.Context, scope access.Scope, filter todos.Filter, page model.PageRequest) (model.PageResult[model.TodoRecord], error)
	CreateFunc func(ctx context.Context, t *model.TodoRecord) (*model.TodoRecord, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, t *model.TodoRecord, scope access.Scope) (*model.TodoRecord, error)
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
			Filter todos.Filter
			Page   model.PageRequest
		}
		Create []struct {
			Ctx context.Context
			T   *model.TodoRecord
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			T     *model.TodoRecord
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

func (mock *todoRepoMock) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.TodoRecord, error) {
	if mock.GetFunc == nil {
		panic("todoRepoMock.GetFunc: method is nil but todoRepo.Get was just called")
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

func (mock *todoRepoMock) GetCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Scope access.Scope
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *todoRepoMock) List(ctx context.Context, scope access.Scope, filter todos.Filter, page model.PageRequest) (model.PageResult[model.TodoRecord], error) {
	if mock.ListFunc == nil {
		panic("todoRepoMock.ListFunc: method is nil but todoRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx    context.Context
		Scope  access.Scope
		Filter todos.Filter
		Page   model.PageRequest
	}{ctx, scope, filter, page})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope, filter, page)
}

func (mock *todoRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Scope  access.Scope
	Filter todos.Filter
	Page   model.PageRequest
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *todoRepoMock) Create(ctx context.Context, t *model.TodoRecord) (*model.TodoRecord, error) {
	if mock.CreateFunc == nil {
		panic("todoRepoMock.CreateFunc: method is nil but todoRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		T   *model.TodoRecord
	}{ctx, t})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *todoRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *model.TodoRecord
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *todoRepoMock) Update(ctx context.Context, id uuid.UUID, t *model.TodoRecord, scope access.Scope) (*model.TodoRecord, error) {
	if mock.UpdateFunc == nil {
		panic("todoRepoMock.UpdateFunc: method is nil but todoRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx   context.Context
		ID    uuid.UUID
		T     *model.TodoRecord
		Scope access.Scope
	}{ctx, id, t, scope})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, t, scope)
}

func (mock *todoRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	T     *model.TodoRecord
	Scope access.Scope
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *todoRepoMock) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	if mock.DeleteFunc == nil {
		panic("todoRepoMock.DeleteFunc: method is nil but todoRepo.Delete was just called")
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

func (mock *todoRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Scope access.Scope
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
