// Package runtime keeps the local view of a room in step with the remote feed
// and decides which incoming messages deserve an alert.
package runtime

import (
	"context"
	"group-talk/contract"
	"group-talk/domain"
	"group-talk/errors"
	"group-talk/projection"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

type Synchronizer struct {
	log        *slog.Logger
	feed       contract.IRemoteFeed
	notifier   contract.INotifier
	foreground contract.IForeground
	sessions   contract.ISessionStore

	mu sync.Mutex
	// Newest timestamp delivered per room, across subscriptions
	lastSeen map[domain.RoomID]time.Time
}

// NewSynchronizer builds a synchronizer. A nil notifier disables alerts from
// feed changes, which is the case when alerts come from the push channel.
func NewSynchronizer(log *slog.Logger, feed contract.IRemoteFeed, notifier contract.INotifier,
	foreground contract.IForeground, sessions contract.ISessionStore) *Synchronizer {
	return &Synchronizer{
		log:        log,
		feed:       feed,
		notifier:   notifier,
		foreground: foreground,
		sessions:   sessions,
		lastSeen:   make(map[domain.RoomID]time.Time),
	}
}

// Watch delivers full snapshots of room to onView until ctx is done.
// The first snapshot is the full current view; each later change set yields a
// new snapshot. Watching again starts over from the full view.
func (s *Synchronizer) Watch(ctx context.Context, room domain.RoomID, onView func(domain.FeedView)) error {
	timeline := projection.NewTimeline(room)
	err := s.feed.Subscribe(ctx, room, func(cs domain.ChangeSet) {
		timeline.Apply(cs)
		s.OnRemoteChange(s.unseen(cs))
		onView(timeline.Snapshot())
	})
	if err != nil {
		s.log.Error("Feed subscription failed", "room", room, "error", err)
	}
	return err
}

// unseen narrows a change set to the messages added since the last delivery
// for the room. The very first initial view of a room is history and yields
// nothing; a later initial view, after a resubscription, yields what arrived
// in between.
func (s *Synchronizer) unseen(cs domain.ChangeSet) domain.ChangeSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	last, seen := s.lastSeen[cs.Room]
	fresh := cs.Added
	if cs.Initial {
		fresh = nil
		if seen {
			fresh = lo.Filter(cs.Added, func(m domain.Message, _ int) bool {
				return m.Timestamp.After(last)
			})
		}
	}
	for _, m := range cs.Added {
		if m.Timestamp.After(last) {
			last = m.Timestamp
		}
	}
	s.lastSeen[cs.Room] = last
	return domain.ChangeSet{Room: cs.Room, Added: fresh}
}

// Subscription is a live stream of full snapshots of one room.
// Views is closed once the subscription ends; Err then tells why.
type Subscription struct {
	views chan domain.FeedView
	mu    sync.Mutex
	err   error
}

func (s *Subscription) Views() <-chan domain.FeedView {
	return s.views
}

func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Subscribe is Watch as a channel, for callers that range over snapshots.
func (s *Synchronizer) Subscribe(ctx context.Context, room domain.RoomID) *Subscription {
	sub := &Subscription{views: make(chan domain.FeedView, 1)}
	go func() {
		defer close(sub.views)
		err := s.Watch(ctx, room, func(view domain.FeedView) {
			select {
			case sub.views <- view:
			case <-ctx.Done():
			}
		})
		sub.mu.Lock()
		sub.err = err
		sub.mu.Unlock()
	}()
	return sub
}

// Send appends a message to the room. Empty text is rejected before anything
// reaches the feed. The companion notification record is best effort.
func (s *Synchronizer) Send(ctx context.Context, room domain.RoomID, sender, text string) (domain.Message, error) {
	content := strings.TrimSpace(text)
	if content == "" {
		return domain.Message{}, errors.ErrEmptyMessage
	}
	message, err := s.feed.Append(ctx, room, sender, content)
	if err != nil {
		s.log.Error("Failed to append message", "room", room, "error", err)
		return domain.Message{}, err
	}
	notification := domain.PendingNotification{
		MessageID: message.ID,
		Room:      message.Room,
		Sender:    message.Sender,
		Content:   message.Content,
		Timestamp: message.Timestamp,
	}
	if err = s.feed.AppendNotification(ctx, notification); err != nil {
		s.log.Warn("Failed to append notification record",
			"room", room, "message_id", message.ID, "error", err)
	}
	return message, nil
}

// OnRemoteChange alerts for every added message written by someone else while
// the application is in the background. Modified and removed entries never alert.
func (s *Synchronizer) OnRemoteChange(cs domain.ChangeSet) {
	if s.notifier == nil || len(cs.Added) == 0 {
		return
	}
	currentUser, err := s.sessions.Current()
	if err != nil {
		s.log.Debug("No current session while processing change set", "room", cs.Room, "error", err)
	}
	for _, message := range cs.Added {
		if message.Sender == currentUser {
			continue
		}
		// Point-in-time check, the state may flip right after
		if s.foreground.IsForeground() {
			continue
		}
		s.notifier.NotifyMessage(message)
	}
}
