package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stockadmin/internal/domain"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *domain.Banner) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Banner, error)
	List(ctx context.Context, bannerType *domain.BannerType) ([]domain.Banner, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type bannerRepository struct {
	db *sqlx.DB
}

func NewBannerRepository(db *sqlx.DB) BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	query := `
		INSERT INTO banners (id, parent_id, type, storage_path)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		banner.ID, banner.ParentID, banner.Type, banner.StoragePath,
	).Scan(&banner.CreatedAt, &banner.UpdatedAt)
}

func (r *bannerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Banner, error) {
	var banner domain.Banner
	query := `SELECT * FROM banners WHERE id = $1`

	err := r.db.GetContext(ctx, &banner, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) List(ctx context.Context, bannerType *domain.BannerType) ([]domain.Banner, error) {
	banners := []domain.Banner{}

	if bannerType != nil {
		query := `SELECT * FROM banners WHERE type = $1 ORDER BY created_at DESC`
		err := r.db.SelectContext(ctx, &banners, query, bannerType)
		return banners, err
	}

	query := `SELECT * FROM banners ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &banners, query)
	return banners, err
}

func (r *bannerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
