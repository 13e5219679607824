package unit_test

import (
	"context"
	"errors"
	"testing"

	"stockadmin/internal/domain"
	"stockadmin/internal/realtime"
	"stockadmin/internal/repository"
	"stockadmin/internal/service/notification"
	"stockadmin/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newNotificationService(notifRepo *mocks.NotificationRepository, userRepo *mocks.UserRepository, publisher *mocks.Publisher) notification.Service {
	router := realtime.NewRouter(publisher, nil)
	return notification.NewService(notifRepo, userRepo, router, nil, nil)
}

func TestNotificationService_EmitBroadcast(t *testing.T) {
	ctx := context.Background()

	t.Run("Publishes And Persists", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		publisher := new(mocks.Publisher)
		svc := newNotificationService(notifRepo, userRepo, publisher)

		input := domain.SendNotificationInput{
			Title:   "Maintenance",
			Message: "Scheduled at midnight",
			Type:    domain.SeverityWarning,
		}

		publisher.On("Publish", ctx, realtime.SystemChannel, realtime.EventBroadcastName,
			mock.MatchedBy(func(p realtime.Payload) bool {
				return p.Title == input.Title && p.Message == input.Message && p.Type == "warning"
			})).Return(nil).Once()

		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == nil && n.Title == input.Title && n.Severity == domain.SeverityWarning && !n.Read
		})).Return(nil).Once()

		err := svc.EmitBroadcast(ctx, input)

		assert.NoError(t, err)
		publisher.AssertExpectations(t)
		notifRepo.AssertExpectations(t)
	})

	t.Run("Invalid Severity", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		publisher := new(mocks.Publisher)
		svc := newNotificationService(notifRepo, userRepo, publisher)

		err := svc.EmitBroadcast(ctx, domain.SendNotificationInput{
			Title:   "Bad",
			Message: "Bad",
			Type:    domain.Severity("critical"),
		})

		assert.ErrorIs(t, err, notification.ErrInvalidSeverity)
		publisher.AssertNotCalled(t, "Publish")
		notifRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Publish Failure Is Swallowed", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		publisher := new(mocks.Publisher)
		svc := newNotificationService(notifRepo, userRepo, publisher)

		publisher.On("Publish", ctx, realtime.SystemChannel, realtime.EventBroadcastName, mock.Anything).
			Return(errors.New("broker down")).Once()
		notifRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		err := svc.EmitBroadcast(ctx, domain.SendNotificationInput{
			Title:   "Still stored",
			Message: "Broker outage must not fail the request",
			Type:    domain.SeverityInfo,
		})

		assert.NoError(t, err)
		notifRepo.AssertExpectations(t)
	})

	t.Run("Persist Failure Is Swallowed", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		publisher := new(mocks.Publisher)
		svc := newNotificationService(notifRepo, userRepo, publisher)

		publisher.On("Publish", ctx, realtime.SystemChannel, realtime.EventBroadcastName, mock.Anything).
			Return(nil).Once()
		notifRepo.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()

		err := svc.EmitBroadcast(ctx, domain.SendNotificationInput{
			Title:   "Still pushed",
			Message: "Database outage must not fail the request",
			Type:    domain.SeverityInfo,
		})

		assert.NoError(t, err)
		publisher.AssertExpectations(t)
	})
}

func TestNotificationService_EmitToUser(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()
	target := &domain.User{ID: targetID, Email: "user@example.com", FullName: "Target User"}

	t.Run("Routes To Private Channel Only", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		publisher := new(mocks.Publisher)
		svc := newNotificationService(notifRepo, userRepo, publisher)

		input := domain.SendUserNotificationInput{
			UserID:  targetID,
			Title:   "Order shipped",
			Message: "Your order is on the way",
			Type:    domain.SeveritySuccess,
		}

		userRepo.On("GetByID", ctx, targetID).Return(target, nil).Once()
		publisher.On("Publish", ctx, realtime.UserChannel(targetID), realtime.EventDirectedName,
			mock.MatchedBy(func(p realtime.Payload) bool {
				return p.Title == input.Title && p.Type == "success"
			})).Return(nil).Once()
		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID != nil && *n.UserID == targetID
		})).Return(nil).Once()

		err := svc.EmitToUser(ctx, input)

		assert.NoError(t, err)
		publisher.AssertExpectations(t)
		notifRepo.AssertExpectations(t)
	})

	t.Run("Unknown Target", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		publisher := new(mocks.Publisher)
		svc := newNotificationService(notifRepo, userRepo, publisher)

		userRepo.On("GetByID", ctx, targetID).Return(nil, nil).Once()

		err := svc.EmitToUser(ctx, domain.SendUserNotificationInput{
			UserID:  targetID,
			Title:   "Lost",
			Message: "Nobody home",
			Type:    domain.SeverityInfo,
		})

		assert.ErrorIs(t, err, notification.ErrUserNotFound)
		publisher.AssertNotCalled(t, "Publish")
		notifRepo.AssertNotCalled(t, "Create")
	})
}

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()
	viewerID := uuid.New()

	t.Run("Window Is Fixed At Fifteen", func(t *testing.T) {
		assert.Equal(t, 15, repository.ListCap)
	})

	t.Run("Returns Visible Records", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		svc := newNotificationService(notifRepo, new(mocks.UserRepository), new(mocks.Publisher))

		stored := []domain.Notification{
			{ID: 2, Title: "Newest"},
			{ID: 1, Title: "Older", UserID: &viewerID},
		}
		notifRepo.On("ListVisible", ctx, viewerID).Return(stored, nil).Once()

		got, err := svc.List(ctx, viewerID)

		assert.NoError(t, err)
		assert.Equal(t, stored, got)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	viewerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		svc := newNotificationService(notifRepo, new(mocks.UserRepository), new(mocks.Publisher))

		notifRepo.On("MarkRead", ctx, viewerID, int64(42)).Return(true, nil).Once()

		assert.NoError(t, svc.MarkRead(ctx, viewerID, 42))
		notifRepo.AssertExpectations(t)
	})

	t.Run("Not Visible", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		svc := newNotificationService(notifRepo, new(mocks.UserRepository), new(mocks.Publisher))

		notifRepo.On("MarkRead", ctx, viewerID, int64(42)).Return(false, nil).Once()

		assert.ErrorIs(t, svc.MarkRead(ctx, viewerID, 42), notification.ErrNotFound)
	})
}

func TestNotificationService_Delete(t *testing.T) {
	ctx := context.Background()
	viewerID := uuid.New()

	t.Run("Not Visible", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		svc := newNotificationService(notifRepo, new(mocks.UserRepository), new(mocks.Publisher))

		notifRepo.On("Delete", ctx, viewerID, int64(7)).Return(false, nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, viewerID, 7), notification.ErrNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		svc := newNotificationService(notifRepo, new(mocks.UserRepository), new(mocks.Publisher))

		notifRepo.On("Delete", ctx, viewerID, int64(7)).Return(true, nil).Once()

		assert.NoError(t, svc.Delete(ctx, viewerID, 7))
	})
}

func TestNotificationService_BulkOperations(t *testing.T) {
	ctx := context.Background()
	viewerID := uuid.New()

	t.Run("MarkAllRead Reports Count", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		svc := newNotificationService(notifRepo, new(mocks.UserRepository), new(mocks.Publisher))

		notifRepo.On("MarkAllRead", ctx, viewerID).Return(int64(3), nil).Once()

		count, err := svc.MarkAllRead(ctx, viewerID)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("ClearAll Reports Count", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		svc := newNotificationService(notifRepo, new(mocks.UserRepository), new(mocks.Publisher))

		notifRepo.On("DeleteAllVisible", ctx, viewerID).Return(int64(5), nil).Once()

		count, err := svc.ClearAll(ctx, viewerID)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})
}
