package repositories

import (
	"group-talk/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newNotification(sender, content string, at time.Time) domain.PendingNotification {
	return domain.PendingNotification{
		ID:        uuid.New(),
		MessageID: uuid.New(),
		Room:      "group",
		Sender:    sender,
		Content:   content,
		Timestamp: at,
	}
}

func TestNotificationRepository_Pending(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openTestDB(t), slog.Default())
	now := time.Now().UTC()
	first := newNotification("alice", "hi", now)
	second := newNotification("bob", "there", now.Add(time.Second))
	third := newNotification("clara", "!", now.Add(2*time.Second))

	// Given three stored records
	for _, n := range []domain.PendingNotification{third, first, second} {
		req.NoError(repository.StoreNotification(n))
	}

	t.Run("should list unprocessed records oldest first", func(t *testing.T) {
		req := require.New(t)
		pending, err := repository.PendingNotifications(0)
		req.NoError(err)
		req.Len(pending, 3)
		req.Equal(first.ID, pending[0].ID)
		req.Equal(first.MessageID, pending[0].MessageID)
		req.Equal(third.ID, pending[2].ID)
	})

	t.Run("should honor the limit", func(t *testing.T) {
		req := require.New(t)
		pending, err := repository.PendingNotifications(2)
		req.NoError(err)
		req.Len(pending, 2)
	})

	t.Run("should hide processed records", func(t *testing.T) {
		req := require.New(t)
		req.NoError(repository.MarkProcessed(first.ID))
		pending, err := repository.PendingNotifications(0)
		req.NoError(err)
		req.Len(pending, 2)
		req.Equal(second.ID, pending[0].ID)
	})

	t.Run("should drop processed records from the pending index", func(t *testing.T) {
		req := require.New(t)
		count, err := repository.PendingCount()
		req.NoError(err)
		req.Equal(2, count)
	})

	t.Run("should fail to mark an unknown record", func(t *testing.T) {
		req := require.New(t)
		err := repository.MarkProcessed(uuid.New())
		req.True(IsNotFound(err))
	})
}

func TestNotificationRepository_Processed_History_Is_Not_Scanned(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openTestDB(t), slog.Default())
	now := time.Now().UTC()

	// Given a long processed history and one fresh record
	for i := 0; i < 200; i++ {
		n := newNotification("alice", "old", now.Add(time.Duration(i)*time.Millisecond))
		n.Processed = true
		req.NoError(repository.StoreNotification(n))
	}
	fresh := newNotification("bob", "new", now.Add(time.Second))
	req.NoError(repository.StoreNotification(fresh))

	// When the relay asks for pending records
	pending, err := repository.PendingNotifications(0)

	// Then only the pending index is walked
	req.NoError(err)
	req.Len(pending, 1)
	req.Equal(fresh.ID, pending[0].ID)
	count, err := repository.PendingCount()
	req.NoError(err)
	req.Equal(1, count)
}
