package domain

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification for storage and client styling.
// Wire values are lowercase and case-sensitive.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return true
	default:
		return false
	}
}

// Notification is the durable record produced for every emitted event.
// IDs are server-assigned and monotonic in creation order. A nil UserID
// marks a system-wide record visible to every viewer; read state is global
// per record, not per viewer.
type Notification struct {
	ID        int64      `json:"id" db:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	Title     string     `json:"title" db:"title"`
	Message   string     `json:"message" db:"message"`
	Severity  Severity   `json:"type" db:"severity"`
	Read      bool       `json:"read" db:"read"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

type EventKind string

const (
	EventBroadcast EventKind = "broadcast"
	EventDirected  EventKind = "directed"
)

// NotificationEvent is the transient emission unit. It is never stored;
// each event yields exactly one Notification via the persistence listener
// and a best-effort real-time push via the channel router.
type NotificationEvent struct {
	Kind         EventKind
	Title        string
	Message      string
	Severity     Severity
	TargetUserID *uuid.UUID
	EmittedAt    time.Time
}

type SendNotificationInput struct {
	Title   string   `json:"title" validate:"required"`
	Message string   `json:"message" validate:"required"`
	Type    Severity `json:"type" validate:"required,oneof=info success warning error"`
}

type SendUserNotificationInput struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Title   string    `json:"title" validate:"required"`
	Message string    `json:"message" validate:"required"`
	Type    Severity  `json:"type" validate:"required,oneof=info success warning error"`
}
