package caserecord

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/database/repository/caserecords"
	"github.com/heartmarshall/casedesk/internal/model"
)

var _ caseRepo = &caseRepoMock{}

type caseRepoMock struct {
	GetFunc           func(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.CaseRecord, error)
	ListFunc          func(ctx context.Context, scope access.Scope, filter caserecords.Filter, page model.PageRequest) (model.PageResult[model.CaseRecord], error)
	ListForExportFunc func(ctx context.Context, scope access.Scope, filter caserecords.Filter, limit int) ([]model.CaseRecord, error)
	CreateFunc        func(ctx context.Context, c *model.CaseRecord) (*model.CaseRecord, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, c *model.CaseRecord, scope access.Scope) (*model.CaseRecord, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID, scope access.Scope) error

	calls struct {
		Get []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Scope access.Scope
		}
		List []struct {
			Ctx    context.Context
			Scope  access.Scope
			Filter caserecords.Filter
			Page   model.PageRequest
		}
		ListForExport []struct {
			Ctx    context.Context
			Scope  access.Scope
			Filter caserecords.Filter
			Limit  int
		}
		Create []struct {
			Ctx context.Context
			C   *model.CaseRecord
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			C     *model.CaseRecord
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
	lockListForExport sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *caseRepoMock) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.CaseRecord, error) {
	if mock.GetFunc == nil {
		panic("caseRepoMock.GetFunc: method is nil but caseRepo.Get was just called")
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

func (mock *caseRepoMock) GetCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Scope access.Scope
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *caseRepoMock) List(ctx context.Context, scope access.Scope, filter caserecords.Filter, page model.PageRequest) (model.PageResult[model.CaseRecord], error) {
	if mock.ListFunc == nil {
		panic("caseRepoMock.ListFunc: method is nil but caseRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx    context.Context
		Scope  access.Scope
		Filter caserecords.Filter
		Page   model.PageRequest
	}{ctx, scope, filter, page})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope, filter, page)
}

func (mock *caseRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Scope  access.Scope
	Filter caserecords.Filter
	Page   model.PageRequest
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *caseRepoMock) ListForExport(ctx context.Context, scope access.Scope, filter caserecords.Filter, limit int) ([]model.CaseRecord, error) {
	if mock.ListForExportFunc == nil {
		panic("caseRepoMock.ListForExportFunc: method is nil but caseRepo.ListForExport was just called")
	}
	mock.lockListForExport.Lock()
	mock.calls.ListForExport = append(mock.calls.ListForExport, struct {
		Ctx    context.Context
		Scope  access.Scope
		Filter caserecords.Filter
		Limit  int
	}{ctx, scope, filter, limit})
	mock.lockListForExport.Unlock()
	return mock.ListForExportFunc(ctx, scope, filter, limit)
}

func (mock *caseRepoMock) ListForExportCalls() []struct {
	Ctx    context.Context
	Scope  access.Scope
	Filter caserecords.Filter
	Limit  int
} {
	mock.lockListForExport.RLock()
	defer mock.lockListForExport.RUnlock()
	return mock.calls.ListForExport
}

func (mock *caseRepoMock) Create(ctx context.Context, c *model.CaseRecord) (*model.CaseRecord, error) {
	if mock.CreateFunc == nil {
		panic("caseRepoMock.CreateFunc: method is nil but caseRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		C   *model.CaseRecord
	}{ctx, c})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *caseRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *model.CaseRecord
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *caseRepoMock) Update(ctx context.Context, id uuid.UUID, c *model.CaseRecord, scope access.Scope) (*model.CaseRecord, error) {
	if mock.UpdateFunc == nil {
		panic("caseRepoMock.UpdateFunc: method is nil but caseRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx   context.Context
		ID    uuid.UUID
		C     *model.CaseRecord
		Scope access.Scope
	}{ctx, id, c, scope})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, c, scope)
}

func (mock *caseRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	C     *model.CaseRecord
	Scope access.Scope
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *caseRepoMock) Delete(ctx context.Context, id uuid.UUID, scope access.Scope) error {
	if mock.DeleteFunc == nil {
		panic("caseRepoMock.DeleteFunc: method is nil but caseRepo.Delete was just called")
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

func (mock *caseRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Scope access.Scope
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
