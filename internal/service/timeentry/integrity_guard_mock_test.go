package timeentry

import (
	"context"
	"sync"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/guard"
)

var _ integrityGuard = &integrityGuardMock{}

type integrityGuardMock struct {
	CheckReferencesFunc func(ctx context.Context, scope access.Scope, refs []guard.Reference, values guard.Values) error

	calls struct {
		CheckReferences []struct {
			Ctx    context.Context
			Scope  access.Scope
			Refs   []guard.Reference
			Values guard.Values
		}
	}
	lockCheckReferences sync.RWMutex
}

func (mock *integrityGuardMock) CheckReferences(ctx context.Context, scope access.Scope, refs []guard.Reference, values guard.Values) error {
	if mock.CheckReferencesFunc == nil {
		panic("integrityGuardMock.CheckReferencesFunc: method is nil but integrityGuard.CheckReferences was just called")
	}
	mock.lockCheckReferences.Lock()
	mock.calls.CheckReferences = append(mock.calls.CheckReferences, struct {
		Ctx    context.Context
		Scope  access.Scope
		Refs   []guard.Reference
		Values guard.Values
	}{ctx, scope, refs, values})
	mock.lockCheckReferences.Unlock()
	return mock.CheckReferencesFunc(ctx, scope, refs, values)
}

func (mock *integrityGuardMock) CheckReferencesCalls() []struct {
	Ctx    context.Context
	Scope  access.Scope
	Refs   []guard.Reference
	Values guard.Values
} {
	mock.lockCheckReferences.RLock()
	defer mock.lockCheckReferences.RUnlock()
	return mock.calls.CheckReferences
}
