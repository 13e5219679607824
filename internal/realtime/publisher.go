// Package realtime maps notification events onto pub/sub channels and
// serializes their wire payloads. The broker itself is behind the
// Publisher interface so business logic never touches a concrete client
// and tests can substitute a fake.
package realtime

import (
	"context"
	"time"
)

const (
	// SystemChannel carries broadcast notifications; subscription is open.
	SystemChannel = "system-notifications"

	// UserChannelPrefix prefixes private per-user channels: "user.<uuid>".
	UserChannelPrefix = "user."

	// Wire event names, kept from the producing application so existing
	// consumers keep working.
	EventBroadcastName = "MessageSent"
	EventDirectedName  = "UserNotification"
)

// Payload is the exact wire shape clients consume. It deliberately omits
// any user id: targeting is inferred from the channel a client is
// subscribed to, never from payload contents.
type Payload struct {
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
	Time    time.Time `json:"time"`
}

// Envelope is the serialized frame written to a channel.
type Envelope struct {
	Event string  `json:"event"`
	Data  Payload `json:"data"`
}

// Publisher pushes one serialized event to one channel. Delivery is
// best-effort and at-most-once per connected subscriber; there is no
// replay or per-channel backlog.
type Publisher interface {
	Publish(ctx context.Context, channel, event string, payload Payload) error
}
