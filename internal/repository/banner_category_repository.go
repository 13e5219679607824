package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stockadmin/internal/domain"
)

type BannerCategoryRepository interface {
	Create(ctx context.Context, bc *domain.BannerCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BannerCategory, error)
	List(ctx context.Context, contextID *uuid.UUID) ([]domain.BannerCategory, error)
	Update(ctx context.Context, bc *domain.BannerCategory) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type bannerCategoryRepository struct {
	db *sqlx.DB
}

func NewBannerCategoryRepository(db *sqlx.DB) BannerCategoryRepository {
	return &bannerCategoryRepository{db: db}
}

func (r *bannerCategoryRepository) Create(ctx context.Context, bc *domain.BannerCategory) error {
	query := `
		INSERT INTO banner_categories (id, name, context_id, banner_id, type, category_id, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		bc.ID, bc.Name, bc.ContextID, bc.BannerID, bc.Type, bc.CategoryID, bc.Priority,
	).Scan(&bc.CreatedAt, &bc.UpdatedAt)
}

func (r *bannerCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BannerCategory, error) {
	var bc domain.BannerCategory
	query := `SELECT * FROM banner_categories WHERE id = $1`

	err := r.db.GetContext(ctx, &bc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bc, nil
}

func (r *bannerCategoryRepository) List(ctx context.Context, contextID *uuid.UUID) ([]domain.BannerCategory, error) {
	categories := []domain.BannerCategory{}

	if contextID != nil {
		query := `SELECT * FROM banner_categories WHERE context_id = $1 ORDER BY priority DESC, created_at DESC`
		err := r.db.SelectContext(ctx, &categories, query, contextID)
		return categories, err
	}

	query := `SELECT * FROM banner_categories ORDER BY priority DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &categories, query)
	return categories, err
}

func (r *bannerCategoryRepository) Update(ctx context.Context, bc *domain.BannerCategory) error {
	query := `
		UPDATE banner_categories
		SET name = :name, banner_id = :banner_id, type = :type,
			category_id = :category_id, priority = :priority, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, bc)
	return err
}

func (r *bannerCategoryRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM banner_categories WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
