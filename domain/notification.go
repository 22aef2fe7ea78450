package domain

import (
	"time"

	"github.com/google/uuid"
)

// PendingNotification is the companion record written to the notifications
// collection after a successful send. A relay marks it processed once it has
// been handed to the push channel.
type PendingNotification struct {
	ID        uuid.UUID
	MessageID uuid.UUID
	Room      RoomID
	Sender    string
	Content   string
	Timestamp time.Time
	Processed bool
}

// PushPayload is the validated form of a key-value payload received from the
// push channel.
type PushPayload struct {
	MessageID uuid.UUID
	Sender    string    `validate:"required"`
	Content   string    `validate:"required"`
	Timestamp time.Time `validate:"required"`
}

// Alert is a user-visible local notification.
type Alert struct {
	ID    uint64
	Title string
	Body  string
}
