package mocks

import (
	"context"

	"stockadmin/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type WarehouseRepository struct {
	mock.Mock
}

func (m *WarehouseRepository) Create(ctx context.Context, w *domain.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *WarehouseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warehouse), args.Error(1)
}

func (m *WarehouseRepository) List(ctx context.Context, contextID *uuid.UUID, params domain.PaginationParams) ([]domain.Warehouse, int64, error) {
	args := m.Called(ctx, contextID, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Warehouse), args.Get(1).(int64), args.Error(2)
}

func (m *WarehouseRepository) ListByContext(ctx context.Context, contextID uuid.UUID) ([]domain.Warehouse, error) {
	args := m.Called(ctx, contextID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Warehouse), args.Error(1)
}

func (m *WarehouseRepository) Update(ctx context.Context, w *domain.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *WarehouseRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type WarehouseStockRepository struct {
	mock.Mock
}

func (m *WarehouseStockRepository) Create(ctx context.Context, stock *domain.WarehouseStock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *WarehouseStockRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WarehouseStock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarehouseStock), args.Error(1)
}

func (m *WarehouseStockRepository) ListForContextCategory(ctx context.Context, contextID uuid.UUID, categoryID int64) ([]domain.WarehouseStock, error) {
	args := m.Called(ctx, contextID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WarehouseStock), args.Error(1)
}

func (m *WarehouseStockRepository) Update(ctx context.Context, stock *domain.WarehouseStock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *WarehouseStockRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
