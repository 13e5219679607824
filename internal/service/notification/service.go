package notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"stockadmin/internal/domain"
	"stockadmin/internal/pkg/metrics"
	"stockadmin/internal/realtime"
	"stockadmin/internal/repository"
	"stockadmin/internal/service/email"
)

var (
	ErrNotFound        = errors.New("notification not found")
	ErrInvalidSeverity = errors.New("invalid notification severity")
	ErrUserNotFound    = errors.New("target user not found")
)

// Service owns the notification lifecycle: emission fans each event out to
// the channel router and the persistence listener, and the query surface
// serves the stored records back scoped to the viewer.
//
// Emission is fire-and-forget past input validation: publish and persist
// failures are logged and counted but never surfaced to the caller, so a
// broken broker or database cannot fail the triggering request.
type Service interface {
	EmitBroadcast(ctx context.Context, input domain.SendNotificationInput) error
	EmitToUser(ctx context.Context, input domain.SendUserNotificationInput) error

	List(ctx context.Context, viewerID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, viewerID uuid.UUID, id int64) error
	MarkAllRead(ctx context.Context, viewerID uuid.UUID) (int64, error)
	Delete(ctx context.Context, viewerID uuid.UUID, id int64) error
	ClearAll(ctx context.Context, viewerID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, viewerID uuid.UUID) (int64, error)
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	router    *realtime.Router
	emailSvc  email.Service
	logger    *slog.Logger
}

// NewService wires the emitter to its fan-out targets. emailSvc may be nil;
// directed events then skip email delivery.
func NewService(
	notifRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	router *realtime.Router,
	emailSvc email.Service,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		router:    router,
		emailSvc:  emailSvc,
		logger:    logger,
	}
}

func (s *service) EmitBroadcast(ctx context.Context, input domain.SendNotificationInput) error {
	if !input.Type.IsValid() {
		return ErrInvalidSeverity
	}

	event := domain.NotificationEvent{
		Kind:      domain.EventBroadcast,
		Title:     input.Title,
		Message:   input.Message,
		Severity:  input.Type,
		EmittedAt: time.Now().UTC(),
	}

	s.fanOut(ctx, event)
	return nil
}

func (s *service) EmitToUser(ctx context.Context, input domain.SendUserNotificationInput) error {
	if !input.Type.IsValid() {
		return ErrInvalidSeverity
	}

	target, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	event := domain.NotificationEvent{
		Kind:         domain.EventDirected,
		Title:        input.Title,
		Message:      input.Message,
		Severity:     input.Type,
		TargetUserID: &input.UserID,
		EmittedAt:    time.Now().UTC(),
	}

	s.fanOut(ctx, event)

	if s.emailSvc != nil {
		go func() {
			mailCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			err := s.emailSvc.SendNotificationEmail(mailCtx, target.Email, target.FullName,
				event.Title, event.Message, string(event.Severity))
			if err != nil {
				s.logger.LogAttrs(mailCtx, slog.LevelError, "notification email failed",
					slog.String("user_id", target.ID.String()),
					slog.String("error", err.Error()),
				)
			}
		}()
	}

	return nil
}

// fanOut hands one event to both sides of the split: the router for the
// real-time push and the persistence listener for the durable record.
func (s *service) fanOut(ctx context.Context, event domain.NotificationEvent) {
	metrics.EventsEmitted.WithLabelValues(string(event.Kind)).Inc()

	s.router.Route(ctx, event)
	s.persist(ctx, event)
}

// persist writes exactly one record per event. A failed insert is logged
// and counted; the event's real-time push already happened independently.
func (s *service) persist(ctx context.Context, event domain.NotificationEvent) {
	record := &domain.Notification{
		UserID:   event.TargetUserID,
		Title:    event.Title,
		Message:  event.Message,
		Severity: event.Severity,
	}

	if err := s.notifRepo.Create(ctx, record); err != nil {
		metrics.PersistFailures.Inc()
		s.logger.LogAttrs(ctx, slog.LevelError, "notification persist failed",
			slog.String("kind", string(event.Kind)),
			slog.String("error", err.Error()),
		)
	}
}

func (s *service) List(ctx context.Context, viewerID uuid.UUID) ([]domain.Notification, error) {
	return s.notifRepo.ListVisible(ctx, viewerID)
}

func (s *service) MarkRead(ctx context.Context, viewerID uuid.UUID, id int64) error {
	found, err := s.notifRepo.MarkRead(ctx, viewerID, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, viewerID uuid.UUID) (int64, error) {
	return s.notifRepo.MarkAllRead(ctx, viewerID)
}

func (s *service) Delete(ctx context.Context, viewerID uuid.UUID, id int64) error {
	found, err := s.notifRepo.Delete(ctx, viewerID, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *service) ClearAll(ctx context.Context, viewerID uuid.UUID) (int64, error) {
	return s.notifRepo.DeleteAllVisible(ctx, viewerID)
}

func (s *service) CountUnread(ctx context.Context, viewerID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, viewerID)
}
