package safeexec

import (
	"context"
	"sync"

	"github.com/heartmarshall/casedesk/internal/access"
)

var _ sessions = &sessionsMock{}

type sessionsMock struct {
	ValidateFunc   func(ctx context.Context) (*access.Principal, error)
	InvalidateFunc func()

	calls struct {
		Validate   []struct{ Ctx context.Context }
		Invalidate []struct{}
	}
	lockValidate   sync.RWMutex
	lockInvalidate sync.RWMutex
}

func (mock *sessionsMock) Validate(ctx context.Context) (*access.Principal, error) {
	if mock.ValidateFunc == nil {
		panic("sessionsMock.ValidateFunc: method is nil but sessions.Validate was just called")
	}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, struct{ Ctx context.Context }{ctx})
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(ctx)
}

func (mock *sessionsMock) ValidateCalls() []struct{ Ctx context.Context } {
	mock.lockValidate.RLock()
	defer mock.lockValidate.RUnlock()
	return mock.calls.Validate
}

func (mock *sessionsMock) Invalidate() {
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, struct{}{})
	mock.lockInvalidate.Unlock()
	if mock.InvalidateFunc != nil {
		mock.InvalidateFunc()
	}
}

func (mock *sessionsMock) InvalidateCalls() []struct{} {
	mock.lockInvalidate.RLock()
	defer mock.lockInvalidate.RUnlock()
	return mock.calls.Invalidate
}
