package actor

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/guard"
)

var _ integrityGuard = &integrityGuardMock{}

type integrityGuardMock struct {
	CheckFunc           func(ctx context.Context, plan guard.Plan) error
	CheckDependentsFunc func(ctx context.Context, deps []guard.Dependent, id uuid.UUID) error

	calls struct {
		Check []struct {
			Ctx  context.Context
			Plan guard.Plan
		}
		CheckDependents []struct {
			Ctx  context.Context
			Deps []guard.Dependent
			ID   uuid.UUID
		}
	}
	lockCheck sync.RWMutex
	lockCheckDependents sync.RWMutex
}

func (mock *integrityGuardMock) Check(ctx context.Context, plan guard.Plan) error {
	if mock.CheckFunc == nil {
		panic("integrityGuardMock.CheckFunc: method is nil but integrityGuard.Check was just called")
	}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, struct {
		Ctx  context.Context
		Plan guard.Plan
	}{ctx, plan})
	mock.lockCheck.Unlock()
	return mock.CheckFunc(ctx, plan)
}

func (mock *integrityGuardMock) CheckCalls() []struct {
	Ctx  context.Context
	Plan guard.Plan
} {
	mock.lockCheck.RLock()
	defer mock.lockCheck.RUnlock()
	return mock.calls.Check
}

func (mock *integrityGuardMock) CheckDependents(ctx context.Context, deps []guard.Dependent, id uuid.UUID) error {
	if mock.CheckDependentsFunc == nil {
		panic("integrityGuardMock.CheckDependentsFunc: method is nil but integrityGuard.CheckDependents was just called")
	}
	mock.lockCheckDependents.Lock()
	mock.calls.CheckDependents = append(mock.calls.CheckDependents, struct {
		Ctx  context.Context
		Deps []guard.Dependent
		ID   uuid.UUID
	}{ctx, deps, id})
	mock.lockCheckDependents.Unlock()
	return mock.CheckDependentsFunc(ctx, deps, id)
}

func (mock *integrityGuardMock) CheckDependentsCalls() []struct {
	Ctx  context.Context
	Deps []guard.Dependent
	ID   uuid.UUID
} {
	mock.lockCheckDependents.RLock()
	defer mock.lockCheckDependents.RUnlock()
	return mock.calls.CheckDependents
}
