package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/model"
)

var _ actorRepo = &actorRepoMock{}

type actorRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*model.Actor, error)
	GetByEmailFunc func(ctx context.Context, email string) (*model.Actor, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockGetByID    sync.RWMutex
	lockGetByEmail sync.RWMutex
}

func (mock *actorRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*model.Actor, error) {
	if mock.GetByIDFunc == nil {
		panic("actorRepoMock.GetByIDFunc: method is nil but actorRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{ctx, id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *actorRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *actorRepoMock) GetByEmail(ctx context.Context, email string) (*model.Actor, error) {
	if mock.GetByEmailFunc == nil {
		panic("actorRepoMock.GetByEmailFunc: method is nil but actorRepo.GetByEmail was just called")
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, struct {
		Ctx   context.Context
		Email string
	}{ctx, email})
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *actorRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	defer mock.lockGetByEmail.RUnlock()
	return mock.calls.GetByEmail
}
