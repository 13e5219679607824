package realtime

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"stockadmin/internal/domain"
	"stockadmin/internal/pkg/metrics"
)

// Router resolves an event to its channel and event name and hands the
// serialized payload to the publisher. Failures are logged and counted,
// never returned to the emitting request.
type Router struct {
	publisher Publisher
	logger    *slog.Logger
}

func NewRouter(publisher Publisher, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{publisher: publisher, logger: logger}
}

// UserChannel returns the private channel name for a user.
func UserChannel(userID uuid.UUID) string {
	return UserChannelPrefix + userID.String()
}

// Route publishes the event to its channel. Broadcast events go to the
// public system channel; directed events go to the target's private
// channel only.
func (r *Router) Route(ctx context.Context, event domain.NotificationEvent) {
	channel := SystemChannel
	name := EventBroadcastName
	if event.Kind == domain.EventDirected {
		channel = UserChannel(*event.TargetUserID)
		name = EventDirectedName
	}

	payload := Payload{
		Title:   event.Title,
		Message: event.Message,
		Type:    string(event.Severity),
		Time:    event.EmittedAt,
	}

	if err := r.publisher.Publish(ctx, channel, name, payload); err != nil {
		metrics.PublishFailures.Inc()
		r.logger.LogAttrs(ctx, slog.LevelError, "realtime publish failed",
			slog.String("channel", channel),
			slog.String("event", name),
			slog.String("error", err.Error()),
		)
	}
}

// Authorize reports whether a subscriber may join a channel. The public
// system channel is open; a private user channel requires the subscriber's
// authenticated id to match the id embedded in the channel name.
func Authorize(subscriberID uuid.UUID, channel string) bool {
	if channel == SystemChannel {
		return true
	}
	if id, ok := strings.CutPrefix(channel, UserChannelPrefix); ok {
		parsed, err := uuid.Parse(id)
		return err == nil && parsed == subscriberID
	}
	return false
}
