package unit_test

import (
	"context"
	"testing"

	"stockadmin/internal/domain"
	"stockadmin/internal/service/warehouse"
	"stockadmin/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newWarehouseService(warehouseRepo *mocks.WarehouseRepository, stockRepo *mocks.WarehouseStockRepository, contextRepo *mocks.ContextRepository) warehouse.Service {
	return warehouse.NewService(warehouseRepo, stockRepo, contextRepo, nil, 0)
}

func TestWarehouseService_Availability(t *testing.T) {
	ctx := context.Background()
	contextID := uuid.New()

	t.Run("Unknown Strategy Is Rejected", func(t *testing.T) {
		svc := newWarehouseService(new(mocks.WarehouseRepository), new(mocks.WarehouseStockRepository), new(mocks.ContextRepository))

		_, err := svc.Availability(ctx, domain.AvailabilityQuery{
			ContextID:  contextID,
			CategoryID: 10,
			Strategy:   domain.StockStrategy("experimental"),
		})

		assert.ErrorIs(t, err, warehouse.ErrUnknownStrategy)
	})

	t.Run("Base Strategy Covers Every Warehouse", func(t *testing.T) {
		warehouseRepo := new(mocks.WarehouseRepository)
		stockRepo := new(mocks.WarehouseStockRepository)
		svc := newWarehouseService(warehouseRepo, stockRepo, new(mocks.ContextRepository))

		stocked := domain.Warehouse{ID: uuid.New(), Name: "North", Priority: 2}
		empty := domain.Warehouse{ID: uuid.New(), Name: "South", Priority: 1}

		warehouseRepo.On("ListByContext", ctx, contextID).
			Return([]domain.Warehouse{stocked, empty}, nil).Once()
		stockRepo.On("ListForContextCategory", ctx, contextID, int64(10)).
			Return([]domain.WarehouseStock{{
				WarehouseID: stocked.ID,
				CategoryID:  10,
				MinQuantity: 5,
				MaxQuantity: 8,
			}}, nil).Once()

		items, err := svc.Availability(ctx, domain.AvailabilityQuery{
			ContextID:  contextID,
			CategoryID: 10,
			Strategy:   domain.StrategyBase,
		})

		assert.NoError(t, err)
		assert.Len(t, items, 2)

		byName := map[string]domain.AvailabilityItem{}
		for _, item := range items {
			byName[item.WarehouseName] = item
		}

		assert.GreaterOrEqual(t, byName["North"].Quantity, 5)
		assert.LessOrEqual(t, byName["North"].Quantity, 8)
		assert.Equal(t, 0, byName["South"].Quantity)
		assert.Equal(t, 2, byName["North"].Priority)
	})

	t.Run("Degenerate Band Is Deterministic", func(t *testing.T) {
		warehouseRepo := new(mocks.WarehouseRepository)
		stockRepo := new(mocks.WarehouseStockRepository)
		svc := newWarehouseService(warehouseRepo, stockRepo, new(mocks.ContextRepository))

		w := domain.Warehouse{ID: uuid.New(), Name: "Only"}
		warehouseRepo.On("ListByContext", ctx, contextID).Return([]domain.Warehouse{w}, nil).Once()
		stockRepo.On("ListForContextCategory", ctx, contextID, int64(3)).
			Return([]domain.WarehouseStock{{WarehouseID: w.ID, CategoryID: 3, MinQuantity: 4, MaxQuantity: 4}}, nil).Once()

		items, err := svc.Availability(ctx, domain.AvailabilityQuery{
			ContextID:  contextID,
			CategoryID: 3,
			Strategy:   domain.StrategyBase,
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, items[0].Quantity)
	})
}

func TestWarehouseService_StockValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Create Rejects Inverted Band", func(t *testing.T) {
		svc := newWarehouseService(new(mocks.WarehouseRepository), new(mocks.WarehouseStockRepository), new(mocks.ContextRepository))

		_, err := svc.CreateStock(ctx, domain.CreateWarehouseStockInput{
			WarehouseID: uuid.New(),
			CategoryID:  1,
			MinQuantity: 10,
			MaxQuantity: 5,
		})

		assert.ErrorIs(t, err, warehouse.ErrQuantityBand)
	})

	t.Run("Create Requires Existing Warehouse", func(t *testing.T) {
		warehouseRepo := new(mocks.WarehouseRepository)
		svc := newWarehouseService(warehouseRepo, new(mocks.WarehouseStockRepository), new(mocks.ContextRepository))

		warehouseID := uuid.New()
		warehouseRepo.On("GetByID", ctx, warehouseID).Return(nil, nil).Once()

		_, err := svc.CreateStock(ctx, domain.CreateWarehouseStockInput{
			WarehouseID: warehouseID,
			CategoryID:  1,
			MinQuantity: 1,
			MaxQuantity: 2,
		})

		assert.ErrorIs(t, err, warehouse.ErrNotFound)
	})

	t.Run("Update Rejects Band Inversion Across Fields", func(t *testing.T) {
		stockRepo := new(mocks.WarehouseStockRepository)
		svc := newWarehouseService(new(mocks.WarehouseRepository), stockRepo, new(mocks.ContextRepository))

		stockID := uuid.New()
		stockRepo.On("GetByID", ctx, stockID).Return(&domain.WarehouseStock{
			ID:          stockID,
			MinQuantity: 2,
			MaxQuantity: 6,
		}, nil).Once()

		newMin := 9
		_, err := svc.UpdateStock(ctx, stockID, domain.UpdateWarehouseStockInput{MinQuantity: &newMin})

		assert.ErrorIs(t, err, warehouse.ErrQuantityBand)
		stockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
