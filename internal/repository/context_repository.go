package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stockadmin/internal/domain"
)

type ContextRepository interface {
	Create(ctx context.Context, c *domain.Context) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Context, error)
	List(ctx context.Context, projectID *uuid.UUID, params domain.PaginationParams) ([]domain.Context, int64, error)
	Update(ctx context.Context, c *domain.Context) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type contextRepository struct {
	db *sqlx.DB
}

func NewContextRepository(db *sqlx.DB) ContextRepository {
	return &contextRepository{db: db}
}

func (r *contextRepository) Create(ctx context.Context, c *domain.Context) error {
	query := `
		INSERT INTO contexts (id, project_id, name, key, description, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		c.ID, c.ProjectID, c.Name, c.Key, c.Description, c.Status, c.Priority,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *contextRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Context, error) {
	var c domain.Context
	query := `SELECT * FROM contexts WHERE id = $1`

	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contextRepository) List(ctx context.Context, projectID *uuid.UUID, params domain.PaginationParams) ([]domain.Context, int64, error) {
	params.Validate()

	var total int64
	contexts := []domain.Context{}

	if projectID != nil {
		countQuery := `SELECT COUNT(*) FROM contexts WHERE project_id = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, projectID); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM contexts
			WHERE project_id = $1
			ORDER BY priority DESC, created_at DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &contexts, query, projectID, params.PageSize, params.Offset())
		return contexts, total, err
	}

	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM contexts`); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM contexts
		ORDER BY priority DESC, created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &contexts, query, params.PageSize, params.Offset())
	return contexts, total, err
}

func (r *contextRepository) Update(ctx context.Context, c *domain.Context) error {
	query := `
		UPDATE contexts
		SET name = :name, key = :key, description = :description,
			status = :status, priority = :priority, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, c)
	return err
}

func (r *contextRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contexts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
