package audit

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/casedesk/internal/access"
	auditrepo "github.com/heartmarshall/casedesk/internal/database/repository/audit"
	"github.com/heartmarshall/casedesk/internal/model"
)

var _ entryReader = &entryReaderMock{}

type entryReaderMock struct {
	QueryFunc         func(ctx context.Context, scope access.Scope, filter auditrepo.Filter, page model.PageRequest) (model.PageResult[model.AuditEntry], error)
	ListForExportFunc func(ctx context.Context, scope access.Scope, filter auditrepo.Filter, limit int) ([]model.AuditEntry, error)
	CountSinceFunc    func(ctx context.Context, scope access.Scope, since time.Time) (int, error)
	CountActorsFunc   func(ctx context.Context, scope access.Scope) (int, error)
	TopActionsFunc    func(ctx context.Context, scope access.Scope, since time.Time, limit int) ([]auditrepo.Bucket, error)
	TopActorsFunc     func(ctx context.Context, scope access.Scope, since time.Time, limit int) ([]auditrepo.Bucket, error)
	EstimatedRowsFunc func(ctx context.Context) (int64, error)

	calls struct {
		Query []struct {
			Scope  access.Scope
			Filter auditrepo.Filter
			Page   model.PageRequest
		}
		ListForExport []struct {
			Scope  access.Scope
			Filter auditrepo.Filter
			Limit  int
		}
		CountSince []struct {
			Scope access.Scope
			Since time.Time
		}
		EstimatedRows []struct{}
	}
	lockQuery         sync.RWMutex
	lockListForExport sync.RWMutex
	lockCountSince    sync.RWMutex
	lockEstimatedRows sync.RWMutex
}

func (mock *entryReaderMock) Query(ctx context.Context, scope access.Scope, filter auditrepo.Filter, page model.PageRequest) (model.PageResult[model.AuditEntry], error) {
	if mock.QueryFunc == nil {
		panic("entryReaderMock.QueryFunc: method is nil but entryReader.Query was just called")
	}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, struct {
		Scope  access.Scope
		Filter auditrepo.Filter
		Page   model.PageRequest
	}{scope, filter, page})
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, scope, filter, page)
}

func (mock *entryReaderMock) ListForExport(ctx context.Context, scope access.Scope, filter auditrepo.Filter, limit int) ([]model.AuditEntry, error) {
	if mock.ListForExportFunc == nil {
		panic("entryReaderMock.ListForExportFunc: method is nil but entryReader.ListForExport was just called")
	}
	mock.lockListForExport.Lock()
	mock.calls.ListForExport = append(mock.calls.ListForExport, struct {
		Scope  access.Scope
		Filter auditrepo.Filter
		Limit  int
	}{scope, filter, limit})
	mock.lockListForExport.Unlock()
	return mock.ListForExportFunc(ctx, scope, filter, limit)
}

func (mock *entryReaderMock) ListForExportCalls() []struct {
	Scope  access.Scope
	Filter auditrepo.Filter
	Limit  int
} {
	mock.lockListForExport.RLock()
	calls := mock.calls.ListForExport
	mock.lockListForExport.RUnlock()
	return calls
}

func (mock *entryReaderMock) CountSince(ctx context.Context, scope access.Scope, since time.Time) (int, error) {
	if mock.CountSinceFunc == nil {
		panic("entryReaderMock.CountSinceFunc: method is nil but entryReader.CountSince was just called")
	}
	mock.lockCountSince.Lock()
	mock.calls.CountSince = append(mock.calls.CountSince, struct {
		Scope access.Scope
		Since time.Time
	}{scope, since})
	mock.lockCountSince.Unlock()
	return mock.CountSinceFunc(ctx, scope, since)
}

func (mock *entryReaderMock) CountSinceCalls() []struct {
	Scope access.Scope
	Since time.Time
} {
	mock.lockCountSince.RLock()
	calls := mock.calls.CountSince
	mock.lockCountSince.RUnlock()
	return calls
}

func (mock *entryReaderMock) CountActors(ctx context.Context, scope access.Scope) (int, error) {
	if mock.CountActorsFunc == nil {
		panic("entryReaderMock.CountActorsFunc: method is nil but entryReader.CountActors was just called")
	}
	return mock.CountActorsFunc(ctx, scope)
}

func (mock *entryReaderMock) TopActions(ctx context.Context, scope access.Scope, since time.Time, limit int) ([]auditrepo.Bucket, error) {
	if mock.TopActionsFunc == nil {
		panic("entryReaderMock.TopActionsFunc: method is nil but entryReader.TopActions was just called")
	}
	return mock.TopActionsFunc(ctx, scope, since, limit)
}

func (mock *entryReaderMock) TopActors(ctx context.Context, scope access.Scope, since time.Time, limit int) ([]auditrepo.Bucket, error) {
	if mock.TopActorsFunc == nil {
		panic("entryReaderMock.TopActorsFunc: method is nil but entryReader.TopActors was just called")
	}
	return mock.TopActorsFunc(ctx, scope, since, limit)
}

func (mock *entryReaderMock) EstimatedRows(ctx context.Context) (int64, error) {
	if mock.EstimatedRowsFunc == nil {
		panic("entryReaderMock.EstimatedRowsFunc: method is nil but entryReader.EstimatedRows was just called")
	}
	mock.lockEstimatedRows.Lock()
	mock.calls.EstimatedRows = append(mock.calls.EstimatedRows, struct{}{})
	mock.lockEstimatedRows.Unlock()
	return mock.EstimatedRowsFunc(ctx)
}

func (mock *entryReaderMock) EstimatedRowsCalls() []struct{} {
	mock.lockEstimatedRows.RLock()
	calls := mock.calls.EstimatedRows
	mock.lockEstimatedRows.RUnlock()
	return calls
}
