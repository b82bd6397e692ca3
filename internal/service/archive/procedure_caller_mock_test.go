package archive

import (
	"context"
	"sync"
)

var _ procedureCaller = &procedureCallerMock{}

type procedureCallerMock struct {
	CallFunc func(ctx context.Context, name string, params map[string]any, dst any) error

	calls struct {
		Call []struct {
			Ctx    context.Context
			Name   string
			Params map[string]any
			Dst    any
		}
	}
	lockCall sync.RWMutex
}

func (mock *procedureCallerMock) Call(ctx context.Context, name string, params map[string]any, dst any) error {
	if mock.CallFunc == nil {
		panic("procedureCallerMock.CallFunc: method is nil but procedureCaller.Call was just called")
	}
	mock.lockCall.Lock()
	mock.calls.Call = append(mock.calls.Call, struct {
		Ctx    context.Context
		Name   string
		Params map[string]any
		Dst    any
	}{ctx, name, params, dst})
	mock.lockCall.Unlock()
	return mock.CallFunc(ctx, name, params, dst)
}

func (mock *procedureCallerMock) CallCalls() []struct {
	Ctx    context.Context
	Name   string
	Params map[string]any
	Dst    any
} {
	mock.lockCall.RLock()
	defer mock.lockCall.RUnlock()
	return mock.calls.Call
}
