package caserecord

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/model"
)

// Get returns a case visible to scope.
func (s *Service) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*model.CaseRecord, error) {
	c, err := s.cases.Get(ctx, id, scope)
	if err != nil {
		return nil, fmt.Errorf("get case: %w", scope.Deny(entity, err))
	}
	return c, nil
}

// List returns one page of the cases visible to scope.
func (s *Service) List(ctx context.Context, scope access.Scope, filter Filter, page model.PageRequest) (model.PageResult[model.CaseRecord], error) {
	res, err := s.cases.List(ctx, scope, filter, page.Normalize())
	if err != nil {
		return model.PageResult[model.CaseRecord]{}, fmt.Errorf("list cases: %w", err)
	}
	return res, nil
}
