package actor

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/database/repository/actors"
	"github.com/heartmarshall/casedesk/internal/model"
)

var _ actorRepo = &actorRepoMock{}

type actorRepoMock struct {
	GetFunc    func(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.Actor, error)
	ListFunc   func(ctx context.Context, scope access.Scope, filter actors.Filter, page model.PageRequest) (model.PageResult[model.Actor], error)
	CreateFunc func(ctx context.Context, actor *model.Actor) (*model.Actor, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, actor *model.Actor, scope access.Scope) (*model.Actor, error)
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
			Filter actors.Filter
			Page   model.PageRequest
		}
		Create []struct {
			Ctx   context.Context
			Actor *model.Actor
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Actor *model.Actor
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

func (mock *actorRepoMock) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.Actor, error) {
	if mock.GetFunc == nil {
		panic("actorRepoMock.GetFunc: method is nil but actorRepo.Get was just called")
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

func (mock *actorRepoMock) GetCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Scope access.Scope
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *actorRepoMock) List(ctx context.Context, scope access.Scope, filter actors.Filter, page model.PageRequest) (model.PageResult[model.Actor], error) {
	if mock.ListFunc == nil {
		panic("actorRepoMock.ListFunc: method is nil but actorRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx    context.Context
		Scope  access.Scope
		Filter actors.Filter
		Page   model.PageRequest
	}{ctx, scope, filter, page})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope, filter, page)
}

func (mock *actorRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Scope  access.Scope
	Filter actors.Filter
	Page   model.PageRequest
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *actorRepoMock) Create(ctx context.Context, actor *model.Actor) (*model.Actor, error) {
	if mock.CreateFunc == nil {
		panic("actorRepoMock.CreateFunc: method is nil but actorRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx   context.Context
		Actor *model.Actor
	}{ctx, actor})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, actor)
}

func (mock *actorRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Actor *model.Actor
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *actorRepoMock) Update(ctx context.Context, id uuid.UUID, actor *model.Actor, scope access.Scope) (*model.Actor, error) {
	if mock.UpdateFunc == nil {
		panic("actorRepoMock.UpdateFunc: method is nil but actorRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx   context.Context
		ID    uuid.UUID
		Actor *model.Actor
		Scope access.Scope
	}{ctx, id, actor, scope})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, actor, scope)
}

func (mock *actorRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Actor *model.Actor
	Scope access.Scope
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *actorRepoMock) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	if mock.DeleteFunc == nil {
		panic("actorRepoMock.DeleteFunc: method is nil but actorRepo.Delete was just called")
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

func (mock *actorRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Scope access.Scope
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
