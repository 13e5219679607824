package mocks

import (
	"context"

	"stockadmin/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}

func (m *NotificationRepository) ListVisible(ctx context.Context, viewerID uuid.UUID) ([]domain.Notification, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, viewerID uuid.UUID, id int64) (bool, error) {
	args := m.Called(ctx, viewerID, id)
	return args.Bool(0), args.Error(1)
}

func (m *NotificationRepository) MarkAllRead(ctx context.Context, viewerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, viewerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) Delete(ctx context.Context, viewerID uuid.UUID, id int64) (bool, error) {
	args := m.Called(ctx, viewerID, id)
	return args.Bool(0), args.Error(1)
}

func (m *NotificationRepository) DeleteAllVisible(ctx context.Context, viewerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, viewerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) CountUnread(ctx context.Context, viewerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, viewerID)
	return args.Get(0).(int64), args.Error(1)
}
