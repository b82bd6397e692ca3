package audit

import (
	"context"
	"sync"

	"github.com/heartmarshall/casedesk/internal/model"
)

var _ entryStore = &entryStoreMock{}

type entryStoreMock struct {
	CreateFunc func(ctx context.Context, entry *model.AuditEntry) (*model.AuditEntry, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *model.AuditEntry
		}
	}
	lockCreate sync.RWMutex
}

func (mock *entryStoreMock) Create(ctx context.Context, entry *model.AuditEntry) (*model.AuditEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryStoreMock.CreateFunc: method is nil but entryStore.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *model.AuditEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *entryStoreMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *model.AuditEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
