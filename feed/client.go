// Package feed is the client side of the remote ordered message collection.
// It stores documents in BadgerDB and pushes change sets to live subscriptions.
package feed

import (
	"context"
	"group-talk/domain"
	"group-talk/errors"
	"group-talk/repositories"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Client struct {
	mu            sync.Mutex
	log           *slog.Logger
	messages      repositories.IFeedRepository
	notifications repositories.NotificationRepository
	now           func() time.Time
	lastTimestamp map[domain.RoomID]time.Time
	subscribers   map[domain.RoomID]map[uint64]*mailbox
	nextID        uint64
}

func NewClient(log *slog.Logger, messages repositories.IFeedRepository,
	notifications repositories.NotificationRepository) *Client {
	return &Client{
		log:           log,
		messages:      messages,
		notifications: notifications,
		now:           time.Now,
		lastTimestamp: make(map[domain.RoomID]time.Time),
		subscribers:   make(map[domain.RoomID]map[uint64]*mailbox),
	}
}

// WithClock replaces the source of server timestamps.
func (c *Client) WithClock(now func() time.Time) *Client {
	c.now = now
	return c
}

// Append stores a new message with a fresh ID and a server timestamp, then
// reports it to every subscription of the room.
func (c *Client) Append(ctx context.Context, room domain.RoomID, sender, content string) (domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return domain.Message{}, errors.Remote("append", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	at, err := c.serverTimestamp(room)
	if err != nil {
		return domain.Message{}, errors.Remote("append", err)
	}
	message := domain.Message{
		ID:        uuid.New(),
		Room:      room,
		Sender:    sender,
		Content:   content,
		Timestamp: at,
	}
	if err = c.messages.StoreMessage(message); err != nil {
		return domain.Message{}, errors.Remote("append", err)
	}
	c.lastTimestamp[room] = at
	c.publish(domain.ChangeSet{Room: room, Added: []domain.Message{message}})
	return message, nil
}

// Remove deletes a message and reports the removal to the room's subscriptions.
func (c *Client) Remove(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return errors.Remote("remove", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	removed, err := c.messages.DeleteMessage(id)
	if err != nil {
		return errors.Remote("remove", err)
	}
	c.publish(domain.ChangeSet{Room: removed.Room, Removed: []uuid.UUID{removed.ID}})
	return nil
}

// List returns the room's messages ascending by timestamp.
func (c *Client) List(ctx context.Context, room domain.RoomID) ([]domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Remote("list", err)
	}
	messages, err := c.messages.GetMessages(room)
	if err != nil {
		return nil, errors.Remote("list", err)
	}
	return messages, nil
}

// Subscribe delivers the whole current feed as an Initial change set, then every
// later change in commit order. It blocks until ctx is done.
// Calls to onChange are never concurrent for one subscription.
func (c *Client) Subscribe(ctx context.Context, room domain.RoomID, onChange func(domain.ChangeSet)) error {
	// Listing and registering under the same lock as Append means no write
	// can fall between the initial snapshot and the first incremental change.
	c.mu.Lock()
	current, err := c.messages.GetMessages(room)
	if err != nil {
		c.mu.Unlock()
		return errors.Remote("subscribe", err)
	}
	box := newMailbox()
	id := c.register(room, box)
	c.mu.Unlock()
	defer c.unregister(room, id)

	c.log.Debug("Feed subscription opened", "room", room, "subscription", id, "messages", len(current))
	onChange(domain.ChangeSet{Room: room, Initial: true, Added: current})

	for {
		select {
		case <-ctx.Done():
			c.log.Debug("Feed subscription closed", "room", room, "subscription", id)
			return nil
		case <-box.ready:
			for _, cs := range box.drain() {
				onChange(cs)
			}
		}
	}
}

func (c *Client) AppendNotification(ctx context.Context, notification domain.PendingNotification) error {
	if err := ctx.Err(); err != nil {
		return errors.Remote("append notification", err)
	}
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if err := c.notifications.StoreNotification(notification); err != nil {
		return errors.Remote("append notification", err)
	}
	return nil
}

func (c *Client) PendingNotifications(ctx context.Context, limit int) ([]domain.PendingNotification, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Remote("pending notifications", err)
	}
	pending, err := c.notifications.PendingNotifications(limit)
	if err != nil {
		return nil, errors.Remote("pending notifications", err)
	}
	return pending, nil
}

func (c *Client) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return errors.Remote("mark processed", err)
	}
	if err := c.notifications.MarkProcessed(id); err != nil {
		return errors.Remote("mark processed", err)
	}
	return nil
}

// serverTimestamp returns a timestamp strictly after the last one of the room.
// Caller must hold c.mu.
func (c *Client) serverTimestamp(room domain.RoomID) (time.Time, error) {
	last, ok := c.lastTimestamp[room]
	if !ok {
		message, found, err := c.messages.LastMessage(room)
		if err != nil {
			return time.Time{}, err
		}
		if found {
			last = message.Timestamp
		}
	}
	at := c.now().UTC()
	if !at.After(last) {
		at = last.Add(time.Nanosecond)
	}
	return at, nil
}

// publish posts a change set to every subscription of its room. Caller must hold c.mu.
func (c *Client) publish(cs domain.ChangeSet) {
	for _, box := range c.subscribers[cs.Room] {
		box.post(cs)
	}
}

// register is called with c.mu held.
func (c *Client) register(room domain.RoomID, box *mailbox) uint64 {
	c.nextID++
	if _, ok := c.subscribers[room]; !ok {
		c.subscribers[room] = make(map[uint64]*mailbox)
	}
	c.subscribers[room][c.nextID] = box
	return c.nextID
}

func (c *Client) unregister(room domain.RoomID, id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if boxes, ok := c.subscribers[room]; ok {
		delete(boxes, id)
		// No empty sets left behind
		if len(boxes) == 0 {
			delete(c.subscribers, room)
		}
	}
}

// Subscribers returns the number of live subscriptions of a room.
func (c *Client) Subscribers(room domain.RoomID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subscribers[room])
}
