package repositories

import (
	"fmt"
	"group-talk/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Store_And_Get_Sorted_Messages(t *testing.T) {
	req := require.New(t)
	repository := NewFeedRepository(openTestDB(t), slog.Default())
	room := domain.RoomID("group")
	at := time.Now().UTC()

	// Given messages stored out of order
	messages := []domain.Message{
		{ID: uuid.New(), Room: room, Sender: "Clara", Content: "third", Timestamp: at.Add(2 * time.Minute)},
		{ID: uuid.New(), Room: room, Sender: "Alice", Content: "first", Timestamp: at},
		{ID: uuid.New(), Room: room, Sender: "Bob", Content: "second", Timestamp: at.Add(1 * time.Minute)},
	}
	for _, m := range messages {
		req.NoError(repository.StoreMessage(m))
	}

	// When fetching messages
	fetched, err := repository.GetMessages(room)
	req.NoError(err)

	// Then they come back ascending by timestamp
	req.Len(fetched, 3)
	req.Equal("first", fetched[0].Content)
	req.Equal("second", fetched[1].Content)
	req.Equal("third", fetched[2].Content)
	req.Equal(messages[1].ID, fetched[0].ID)
	req.True(messages[1].Timestamp.Equal(fetched[0].Timestamp))
}

func Test_Messages_Are_Isolated_Per_Room(t *testing.T) {
	req := require.New(t)
	repository := NewFeedRepository(openTestDB(t), slog.Default())
	at := time.Now().UTC()

	req.NoError(repository.StoreMessage(domain.Message{ID: uuid.New(), Room: "group", Sender: "alice", Content: "hi", Timestamp: at}))
	req.NoError(repository.StoreMessage(domain.Message{ID: uuid.New(), Room: "group2", Sender: "bob", Content: "yo", Timestamp: at}))

	fetched, err := repository.GetMessages("group")
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("alice", fetched[0].Sender)
}

func Test_LastMessage(t *testing.T) {
	repository := NewFeedRepository(openTestDB(t), slog.Default())
	room := domain.RoomID("group")

	t.Run("should report nothing on an empty room", func(t *testing.T) {
		req := require.New(t)
		_, found, err := repository.LastMessage(room)
		req.NoError(err)
		req.False(found)
	})

	t.Run("should return the most recent message", func(t *testing.T) {
		req := require.New(t)
		now := time.Now().UTC()
		for i := 1; i <= 5; i++ {
			req.NoError(repository.StoreMessage(domain.Message{
				ID:        uuid.New(),
				Room:      room,
				Sender:    "alice",
				Content:   fmt.Sprintf("Message %d", i),
				Timestamp: now.Add(time.Duration(i) * time.Second),
			}))
		}
		last, found, err := repository.LastMessage(room)
		req.NoError(err)
		req.True(found)
		req.Equal("Message 5", last.Content)
	})
}

func Test_DeleteMessage(t *testing.T) {
	req := require.New(t)
	repository := NewFeedRepository(openTestDB(t), slog.Default())
	room := domain.RoomID("group")
	kept := domain.Message{ID: uuid.New(), Room: room, Sender: "alice", Content: "kept", Timestamp: time.Now().UTC()}
	gone := domain.Message{ID: uuid.New(), Room: room, Sender: "bob", Content: "gone", Timestamp: time.Now().UTC().Add(time.Second)}
	req.NoError(repository.StoreMessage(kept))
	req.NoError(repository.StoreMessage(gone))

	// When a message is deleted
	removed, err := repository.DeleteMessage(gone.ID)

	// Then it is returned and no longer listed
	req.NoError(err)
	req.Equal(gone.ID, removed.ID)
	req.Equal(room, removed.Room)
	fetched, err := repository.GetMessages(room)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal(kept.ID, fetched[0].ID)

	// And deleting it twice reports not found
	_, err = repository.DeleteMessage(gone.ID)
	req.True(IsNotFound(err))
}
