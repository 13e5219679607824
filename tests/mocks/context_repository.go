package mocks

import (
	"context"

	"stockadmin/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ContextRepository struct {
	mock.Mock
}

func (m *ContextRepository) Create(ctx context.Context, c *domain.Context) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ContextRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Context, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Context), args.Error(1)
}

func (m *ContextRepository) List(ctx context.Context, projectID *uuid.UUID, params domain.PaginationParams) ([]domain.Context, int64, error) {
	args := m.Called(ctx, projectID, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Context), args.Get(1).(int64), args.Error(2)
}

func (m *ContextRepository) Update(ctx context.Context, c *domain.Context) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ContextRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
