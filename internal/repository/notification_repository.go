package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stockadmin/internal/domain"
)

// ListCap bounds the notification list endpoint. There is no pagination
// beyond this fixed window of most recent visible records.
const ListCap = 15

// NotificationRepository persists notification records. Every query and
// mutation is scoped by the visibility predicate: a record is visible to a
// viewer when user_id IS NULL (system-wide) or user_id equals the viewer.
type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	ListVisible(ctx context.Context, viewerID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, viewerID uuid.UUID, id int64) (bool, error)
	MarkAllRead(ctx context.Context, viewerID uuid.UUID) (int64, error)
	Delete(ctx context.Context, viewerID uuid.UUID, id int64) (bool, error)
	DeleteAllVisible(ctx context.Context, viewerID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, viewerID uuid.UUID) (int64, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, title, message, severity, read)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.UserID, notif.Title, notif.Message, notif.Severity, notif.Read,
	).Scan(&notif.ID, &notif.CreatedAt)
}

func (r *notificationRepository) ListVisible(ctx context.Context, viewerID uuid.UUID) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	query := `
		SELECT * FROM notifications
		WHERE user_id IS NULL OR user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	err := r.db.SelectContext(ctx, &notifications, query, viewerID, ListCap)
	return notifications, err
}

// MarkRead reports false when no visible record with the id exists. The
// read flag is shared across viewers of system-wide records; the update is
// idempotent by construction.
func (r *notificationRepository) MarkRead(ctx context.Context, viewerID uuid.UUID, id int64) (bool, error) {
	query := `
		UPDATE notifications SET read = true
		WHERE id = $1 AND (user_id IS NULL OR user_id = $2)`

	res, err := r.db.ExecContext(ctx, query, id, viewerID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, viewerID uuid.UUID) (int64, error) {
	query := `
		UPDATE notifications SET read = true
		WHERE read = false AND (user_id IS NULL OR user_id = $1)`

	res, err := r.db.ExecContext(ctx, query, viewerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *notificationRepository) Delete(ctx context.Context, viewerID uuid.UUID, id int64) (bool, error) {
	query := `
		DELETE FROM notifications
		WHERE id = $1 AND (user_id IS NULL OR user_id = $2)`

	res, err := r.db.ExecContext(ctx, query, id, viewerID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *notificationRepository) DeleteAllVisible(ctx context.Context, viewerID uuid.UUID) (int64, error) {
	query := `DELETE FROM notifications WHERE user_id IS NULL OR user_id = $1`

	res, err := r.db.ExecContext(ctx, query, viewerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *notificationRepository) CountUnread(ctx context.Context, viewerID uuid.UUID) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*) FROM notifications
		WHERE read = false AND (user_id IS NULL OR user_id = $1)`

	err := r.db.GetContext(ctx, &count, query, viewerID)
	return count, err
}
