// Package projection builds local timelines from observed feed changes.
// Handles ordering and membership only.
// Does not emit events or interact with UI directly.
package projection

import (
	"group-talk/domain"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Timeline holds the local ordered view of one room.
// It mirrors the remote feed: entries are added, replaced and dropped only as
// change sets say so.
type Timeline struct {
	mu       sync.RWMutex
	Room     domain.RoomID
	messages []domain.Message
}

func NewTimeline(room domain.RoomID) *Timeline {
	return &Timeline{Room: room}
}

// Apply folds a change set into the timeline.
// An Initial change set replaces the whole content.
func (t *Timeline) Apply(cs domain.ChangeSet) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if cs.Initial {
		t.messages = nil
	}
	if len(cs.Removed) > 0 {
		removed := lo.SliceToMap(cs.Removed, func(id uuid.UUID) (uuid.UUID, struct{}) {
			return id, struct{}{}
		})
		t.messages = lo.Reject(t.messages, func(m domain.Message, _ int) bool {
			_, ok := removed[m.ID]
			return ok
		})
	}
	for _, m := range cs.Modified {
		if i := t.indexOf(m.ID); i >= 0 {
			t.messages[i] = m
		}
	}
	for _, m := range cs.Added {
		if t.indexOf(m.ID) >= 0 {
			continue
		}
		t.insert(m)
	}
}

// Snapshot returns a copy of the current ordered view.
func (t *Timeline) Snapshot() domain.FeedView {
	t.mu.RLock()
	defer t.mu.RUnlock()
	messages := make([]domain.Message, len(t.messages))
	copy(messages, t.messages)
	return domain.FeedView{Room: t.Room, Messages: messages}
}

// insert places m at the position the feed's ordering key gives it.
// Entries with equal timestamps keep their arrival order.
func (t *Timeline) insert(m domain.Message) {
	i := sort.Search(len(t.messages), func(i int) bool {
		return t.messages[i].Timestamp.After(m.Timestamp)
	})
	t.messages = append(t.messages, domain.Message{})
	copy(t.messages[i+1:], t.messages[i:])
	t.messages[i] = m
}

func (t *Timeline) indexOf(id uuid.UUID) int {
	_, i, ok := lo.FindIndexOf(t.messages, func(m domain.Message) bool {
		return m.ID == id
	})
	if !ok {
		return -1
	}
	return i
}
