// Package domain contains core concepts of the group chat.
// This file defines Message values and the change sets a feed reports.
// Messages are immutable once the feed has assigned their ID and timestamp.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoomID names a single feed, e.g. "group".
type RoomID string

// Message represents an immutable chat entry of a feed.
type Message struct {
	ID        uuid.UUID // unique identifier, assigned by the feed
	Room      RoomID
	Sender    string
	Content   string
	Timestamp time.Time // server assigned
}

// ChangeSet is one batch of changes reported by a feed subscription.
// Initial is set on the first delivery of a subscription, which carries the
// whole current content of the feed as Added entries.
type ChangeSet struct {
	Room     RoomID
	Initial  bool
	Added    []Message
	Modified []Message
	Removed  []uuid.UUID
}

// FeedView is an ordered snapshot of a feed, ascending by timestamp.
type FeedView struct {
	Room     RoomID
	Messages []Message
}

func (v FeedView) Len() int { return len(v.Messages) }

// Contents returns the message texts in view order.
func (v FeedView) Contents() []string {
	res := make([]string, 0, len(v.Messages))
	for _, m := range v.Messages {
		res = append(res, m.Content)
	}
	return res
}
