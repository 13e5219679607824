package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stockadmin/internal/domain"
)

type WarehouseRepository interface {
	Create(ctx context.Context, w *domain.Warehouse) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Warehouse, error)
	List(ctx context.Context, contextID *uuid.UUID, params domain.PaginationParams) ([]domain.Warehouse, int64, error)
	ListByContext(ctx context.Context, contextID uuid.UUID) ([]domain.Warehouse, error)
	Update(ctx context.Context, w *domain.Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type warehouseRepository struct {
	db *sqlx.DB
}

func NewWarehouseRepository(db *sqlx.DB) WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) Create(ctx context.Context, w *domain.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, context_id, name, description, content, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		w.ID, w.ContextID, w.Name, w.Description, w.Content, w.Status, w.Priority,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
}

func (r *warehouseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Warehouse, error) {
	var w domain.Warehouse
	query := `SELECT * FROM warehouses WHERE id = $1`

	err := r.db.GetContext(ctx, &w, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *warehouseRepository) List(ctx context.Context, contextID *uuid.UUID, params domain.PaginationParams) ([]domain.Warehouse, int64, error) {
	params.Validate()

	var total int64
	warehouses := []domain.Warehouse{}

	if contextID != nil {
		countQuery := `SELECT COUNT(*) FROM warehouses WHERE context_id = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, contextID); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM warehouses
			WHERE context_id = $1
			ORDER BY priority DESC, created_at DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &warehouses, query, contextID, params.PageSize, params.Offset())
		return warehouses, total, err
	}

	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM warehouses`); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM warehouses
		ORDER BY priority DESC, created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &warehouses, query, params.PageSize, params.Offset())
	return warehouses, total, err
}

func (r *warehouseRepository) ListByContext(ctx context.Context, contextID uuid.UUID) ([]domain.Warehouse, error) {
	warehouses := []domain.Warehouse{}
	query := `SELECT * FROM warehouses WHERE context_id = $1 ORDER BY priority DESC, created_at DESC`

	err := r.db.SelectContext(ctx, &warehouses, query, contextID)
	return warehouses, err
}

func (r *warehouseRepository) Update(ctx context.Context, w *domain.Warehouse) error {
	query := `
		UPDATE warehouses
		SET name = :name, description = :description, content = :content,
			status = :status, priority = :priority, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, w)
	return err
}

func (r *warehouseRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
