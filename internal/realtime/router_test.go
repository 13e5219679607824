package realtime_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"stockadmin/internal/domain"
	"stockadmin/internal/realtime"
)

type capturingPublisher struct {
	channel string
	event   string
	payload realtime.Payload
	err     error
	calls   int
}

func (p *capturingPublisher) Publish(_ context.Context, channel, event string, payload realtime.Payload) error {
	p.calls++
	p.channel = channel
	p.event = event
	p.payload = payload
	return p.err
}

func TestRouterRoute(t *testing.T) {
	emittedAt := time.Now().UTC()

	t.Run("Broadcast Goes To System Channel", func(t *testing.T) {
		pub := &capturingPublisher{}
		router := realtime.NewRouter(pub, nil)

		router.Route(context.Background(), domain.NotificationEvent{
			Kind:      domain.EventBroadcast,
			Title:     "Maintenance",
			Message:   "Back soon",
			Severity:  domain.SeverityInfo,
			EmittedAt: emittedAt,
		})

		assert.Equal(t, realtime.SystemChannel, pub.channel)
		assert.Equal(t, realtime.EventBroadcastName, pub.event)
		assert.Equal(t, "Maintenance", pub.payload.Title)
		assert.Equal(t, "info", pub.payload.Type)
		assert.Equal(t, emittedAt, pub.payload.Time)
	})

	t.Run("Directed Goes To Private Channel", func(t *testing.T) {
		pub := &capturingPublisher{}
		router := realtime.NewRouter(pub, nil)
		targetID := uuid.New()

		router.Route(context.Background(), domain.NotificationEvent{
			Kind:         domain.EventDirected,
			Title:        "For you",
			Message:      "Personal",
			Severity:     domain.SeverityError,
			TargetUserID: &targetID,
			EmittedAt:    emittedAt,
		})

		assert.Equal(t, realtime.UserChannel(targetID), pub.channel)
		assert.Equal(t, realtime.EventDirectedName, pub.event)
		assert.Equal(t, "error", pub.payload.Type)
	})

	t.Run("Payload Never Carries Target ID", func(t *testing.T) {
		pub := &capturingPublisher{}
		router := realtime.NewRouter(pub, nil)
		targetID := uuid.New()

		router.Route(context.Background(), domain.NotificationEvent{
			Kind:         domain.EventDirected,
			Title:        "Private",
			Message:      "Addressing lives in the channel name",
			Severity:     domain.SeverityInfo,
			TargetUserID: &targetID,
			EmittedAt:    emittedAt,
		})

		assert.NotContains(t, pub.payload.Message, targetID.String())
		assert.Equal(t, realtime.Payload{
			Title:   "Private",
			Message: "Addressing lives in the channel name",
			Type:    "info",
			Time:    emittedAt,
		}, pub.payload)
	})

	t.Run("Publish Error Does Not Panic Or Propagate", func(t *testing.T) {
		pub := &capturingPublisher{err: errors.New("broker down")}
		router := realtime.NewRouter(pub, nil)

		router.Route(context.Background(), domain.NotificationEvent{
			Kind:      domain.EventBroadcast,
			Title:     "Dropped",
			Message:   "At most once",
			Severity:  domain.SeverityWarning,
			EmittedAt: emittedAt,
		})

		assert.Equal(t, 1, pub.calls)
	})
}

func TestAuthorize(t *testing.T) {
	subscriberID := uuid.New()

	t.Run("System Channel Is Open", func(t *testing.T) {
		assert.True(t, realtime.Authorize(subscriberID, realtime.SystemChannel))
	})

	t.Run("Own Private Channel", func(t *testing.T) {
		assert.True(t, realtime.Authorize(subscriberID, realtime.UserChannel(subscriberID)))
	})

	t.Run("Foreign Private Channel", func(t *testing.T) {
		assert.False(t, realtime.Authorize(subscriberID, realtime.UserChannel(uuid.New())))
	})

	t.Run("Malformed Channel", func(t *testing.T) {
		assert.False(t, realtime.Authorize(subscriberID, "user.not-a-uuid"))
		assert.False(t, realtime.Authorize(subscriberID, "orders"))
	})
}
