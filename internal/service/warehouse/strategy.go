package warehouse

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"stockadmin/internal/domain"
	"stockadmin/internal/repository"
)

// Strategy computes the availability response for a context/category query.
// The strategy set is closed: implementations are registered in the
// service's dispatch table at construction and unknown names are rejected
// at the boundary, never resolved at lookup time.
type Strategy interface {
	BuildResponse(ctx context.Context, query domain.AvailabilityQuery) ([]domain.AvailabilityItem, error)
}

// baseStrategy reports every warehouse of the context with a quantity
// drawn from the configured [min, max] band, or 0 when the category has
// no stock row at that warehouse.
type baseStrategy struct {
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.WarehouseStockRepository
}

func newBaseStrategy(warehouseRepo repository.WarehouseRepository, stockRepo repository.WarehouseStockRepository) Strategy {
	return &baseStrategy{
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
	}
}

func (s *baseStrategy) BuildResponse(ctx context.Context, query domain.AvailabilityQuery) ([]domain.AvailabilityItem, error) {
	warehouses, err := s.warehouseRepo.ListByContext(ctx, query.ContextID)
	if err != nil {
		return nil, err
	}

	stocks, err := s.stockRepo.ListForContextCategory(ctx, query.ContextID, query.CategoryID)
	if err != nil {
		return nil, err
	}

	byWarehouse := make(map[uuid.UUID]domain.WarehouseStock, len(stocks))
	for _, stock := range stocks {
		byWarehouse[stock.WarehouseID] = stock
	}

	items := make([]domain.AvailabilityItem, 0, len(warehouses))
	for _, w := range warehouses {
		quantity := 0
		if stock, ok := byWarehouse[w.ID]; ok {
			quantity = stock.MinQuantity
			if stock.MaxQuantity > stock.MinQuantity {
				quantity += rand.Intn(stock.MaxQuantity - stock.MinQuantity + 1)
			}
		}

		items = append(items, domain.AvailabilityItem{
			WarehouseID:   w.ID,
			WarehouseName: w.Name,
			Quantity:      quantity,
			Priority:      w.Priority,
		})
	}

	return items, nil
}
