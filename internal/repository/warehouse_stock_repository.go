package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stockadmin/internal/domain"
)

type WarehouseStockRepository interface {
	Create(ctx context.Context, stock *domain.WarehouseStock) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WarehouseStock, error)
	ListForContextCategory(ctx context.Context, contextID uuid.UUID, categoryID int64) ([]domain.WarehouseStock, error)
	Update(ctx context.Context, stock *domain.WarehouseStock) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type warehouseStockRepository struct {
	db *sqlx.DB
}

func NewWarehouseStockRepository(db *sqlx.DB) WarehouseStockRepository {
	return &warehouseStockRepository{db: db}
}

func (r *warehouseStockRepository) Create(ctx context.Context, stock *domain.WarehouseStock) error {
	query := `
		INSERT INTO warehouse_stocks (id, warehouse_id, category_id, min_quantity, max_quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		stock.ID, stock.WarehouseID, stock.CategoryID, stock.MinQuantity, stock.MaxQuantity,
	).Scan(&stock.CreatedAt, &stock.UpdatedAt)
}

func (r *warehouseStockRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WarehouseStock, error) {
	var stock domain.WarehouseStock
	query := `SELECT * FROM warehouse_stocks WHERE id = $1`

	err := r.db.GetContext(ctx, &stock, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

// ListForContextCategory joins through warehouses so a single query covers
// every stock row the availability strategies need.
func (r *warehouseStockRepository) ListForContextCategory(ctx context.Context, contextID uuid.UUID, categoryID int64) ([]domain.WarehouseStock, error) {
	stocks := []domain.WarehouseStock{}
	query := `
		SELECT ws.* FROM warehouse_stocks ws
		JOIN warehouses w ON w.id = ws.warehouse_id
		WHERE w.context_id = $1 AND ws.category_id = $2`

	err := r.db.SelectContext(ctx, &stocks, query, contextID, categoryID)
	return stocks, err
}

func (r *warehouseStockRepository) Update(ctx context.Context, stock *domain.WarehouseStock) error {
	query := `
		UPDATE warehouse_stocks
		SET min_quantity = :min_quantity, max_quantity = :max_quantity, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, stock)
	return err
}

func (r *warehouseStockRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM warehouse_stocks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
