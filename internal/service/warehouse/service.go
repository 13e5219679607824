package warehouse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"stockadmin/internal/domain"
	"stockadmin/internal/repository"
)

var (
	ErrNotFound        = errors.New("warehouse not found")
	ErrStockNotFound   = errors.New("warehouse stock not found")
	ErrContextNotFound = errors.New("context not found")
	ErrUnknownStrategy = errors.New("unknown stock strategy")
	ErrQuantityBand    = errors.New("min_quantity must not exceed max_quantity")
)

type Service interface {
	Create(ctx context.Context, input domain.CreateWarehouseInput) (*domain.Warehouse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Warehouse, error)
	List(ctx context.Context, contextID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Warehouse], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateWarehouseInput) (*domain.Warehouse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateStock(ctx context.Context, input domain.CreateWarehouseStockInput) (*domain.WarehouseStock, error)
	UpdateStock(ctx context.Context, id uuid.UUID, input domain.UpdateWarehouseStockInput) (*domain.WarehouseStock, error)
	DeleteStock(ctx context.Context, id uuid.UUID) error

	Availability(ctx context.Context, query domain.AvailabilityQuery) ([]domain.AvailabilityItem, error)
}

type service struct {
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.WarehouseStockRepository
	contextRepo   repository.ContextRepository
	redis         *redis.Client
	cacheTTL      time.Duration

	// Closed dispatch table; populated once at construction.
	strategies map[domain.StockStrategy]Strategy
}

func NewService(
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.WarehouseStockRepository,
	contextRepo repository.ContextRepository,
	redisClient *redis.Client,
	cacheTTL time.Duration,
) Service {
	return &service{
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
		contextRepo:   contextRepo,
		redis:         redisClient,
		cacheTTL:      cacheTTL,
		strategies: map[domain.StockStrategy]Strategy{
			domain.StrategyBase: newBaseStrategy(warehouseRepo, stockRepo),
		},
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateWarehouseInput) (*domain.Warehouse, error) {
	c, err := s.contextRepo.GetByID(ctx, input.ContextID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrContextNotFound
	}

	status := input.Status
	if status == "" {
		status = "active"
	}

	w := &domain.Warehouse{
		ID:          uuid.New(),
		ContextID:   input.ContextID,
		Name:        input.Name,
		Description: input.Description,
		Content:     input.Content,
		Status:      status,
		Priority:    input.Priority,
	}

	if err := s.warehouseRepo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Warehouse, error) {
	w, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}
	return w, nil
}

func (s *service) List(ctx context.Context, contextID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Warehouse], error) {
	warehouses, total, err := s.warehouseRepo.List(ctx, contextID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Warehouse]{}, err
	}
	return domain.NewPaginatedResponse(warehouses, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateWarehouseInput) (*domain.Warehouse, error) {
	w, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		w.Name = *input.Name
	}
	if input.Description != nil {
		w.Description = input.Description
	}
	if input.Content != nil {
		w.Content = input.Content
	}
	if input.Status != nil {
		w.Status = *input.Status
	}
	if input.Priority != nil {
		w.Priority = *input.Priority
	}

	if err := s.warehouseRepo.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.warehouseRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *service) CreateStock(ctx context.Context, input domain.CreateWarehouseStockInput) (*domain.WarehouseStock, error) {
	if input.MinQuantity > input.MaxQuantity {
		return nil, ErrQuantityBand
	}

	w, err := s.warehouseRepo.GetByID(ctx, input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}

	stock := &domain.WarehouseStock{
		ID:          uuid.New(),
		WarehouseID: input.WarehouseID,
		CategoryID:  input.CategoryID,
		MinQuantity: input.MinQuantity,
		MaxQuantity: input.MaxQuantity,
	}

	if err := s.stockRepo.Create(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *service) UpdateStock(ctx context.Context, id uuid.UUID, input domain.UpdateWarehouseStockInput) (*domain.WarehouseStock, error) {
	stock, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, ErrStockNotFound
	}

	if input.MinQuantity != nil {
		stock.MinQuantity = *input.MinQuantity
	}
	if input.MaxQuantity != nil {
		stock.MaxQuantity = *input.MaxQuantity
	}
	if stock.MinQuantity > stock.MaxQuantity {
		return nil, ErrQuantityBand
	}

	if err := s.stockRepo.Update(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *service) DeleteStock(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.stockRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStockNotFound
	}
	return nil
}

// Availability dispatches the query to its registered strategy and caches
// the response for a short TTL.
func (s *service) Availability(ctx context.Context, query domain.AvailabilityQuery) ([]domain.AvailabilityItem, error) {
	strategy, ok := s.strategies[query.Strategy]
	if !ok {
		return nil, ErrUnknownStrategy
	}

	cacheKey := fmt.Sprintf("availability:%s:%d:%s", query.ContextID, query.CategoryID, query.Strategy)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var items []domain.AvailabilityItem
			if json.Unmarshal([]byte(cached), &items) == nil {
				return items, nil
			}
		}
	}

	items, err := strategy.BuildResponse(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if encoded, err := json.Marshal(items); err == nil {
			s.redis.Set(ctx, cacheKey, encoded, s.cacheTTL)
		}
	}

	return items, nil
}
