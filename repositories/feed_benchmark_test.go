package repositories

import (
	"fmt"
	"group-talk/domain"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_FeedHistory_Performance(t *testing.T) {
	if testing.Short() {
		t.Skip("seeding is slow")
	}
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	defer db.Close()

	repo := NewFeedRepository(db, slog.Default())
	totalMessages := 100_000
	targetRoom := domain.RoomID("room_42")

	// Given messages spread over 100 rooms
	startSeed := time.Now()
	start := time.Now().UTC()
	for i := 0; i < totalMessages; i++ {
		req.NoError(repo.StoreMessage(domain.Message{
			ID:        uuid.New(),
			Room:      domain.RoomID(fmt.Sprintf("room_%d", i%100)),
			Sender:    fmt.Sprintf("user_%d", i%500),
			Content:   "Hello world, this is a performance test for group-talk!",
			Timestamp: start.Add(time.Duration(i) * time.Microsecond),
		}))
	}
	t.Logf("Seeded %d messages in %v", totalMessages, time.Since(startSeed))

	// When the whole history of one room is read
	startGet := time.Now()
	messages, err := repo.GetMessages(targetRoom)
	req.NoError(err)
	t.Logf("Retrieved %d messages for %s in %v", len(messages), targetRoom, time.Since(startGet))

	// Then only that room comes back, in order
	req.Len(messages, totalMessages/100)
	for i := 1; i < len(messages); i++ {
		req.True(messages[i-1].Timestamp.Before(messages[i].Timestamp))
	}

	// And the last message is found without a full scan
	startLast := time.Now()
	last, found, err := repo.LastMessage(targetRoom)
	req.NoError(err)
	req.True(found)
	req.Equal(messages[len(messages)-1].ID, last.ID)
	t.Logf("Last message of %s in %v", targetRoom, time.Since(startLast))
}

// TestFeedRepository_ConcurrentStores validates thread-safety when multiple
// goroutines write to the same room simultaneously.
func TestFeedRepository_ConcurrentStores(t *testing.T) {
	req := require.New(t)
	repo := NewFeedRepository(openTestDB(t), slog.Default())
	room := domain.RoomID("concurrent-room")

	const (
		numGoroutines    = 10
		writesPerRoutine = 50
		totalWrites      = numGoroutines * writesPerRoutine
	)
	var wg sync.WaitGroup
	var errorCount atomic.Int32
	start := time.Now().UTC()

	// When: Multiple goroutines write concurrently
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(routineID int) {
			defer wg.Done()
			for j := 0; j < writesPerRoutine; j++ {
				err := repo.StoreMessage(domain.Message{
					ID:        uuid.New(),
					Room:      room,
					Sender:    fmt.Sprintf("user_%d", routineID),
					Content:   fmt.Sprintf("Concurrent write %d-%d", routineID, j),
					Timestamp: start.Add(time.Duration(routineID*writesPerRoutine+j) * time.Nanosecond),
				})
				if err != nil {
					errorCount.Add(1)
				}
			}
		}(i)
	}
	wg.Wait()

	// Then: every write is readable, in timestamp order
	req.Zero(errorCount.Load())
	messages, err := repo.GetMessages(room)
	req.NoError(err)
	req.Len(messages, totalWrites)
	for i := 1; i < len(messages); i++ {
		req.False(messages[i].Timestamp.Before(messages[i-1].Timestamp))
	}
}

func BenchmarkFeedRepository_StoreMessage(b *testing.B) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(b, err)
	defer db.Close()
	repo := NewFeedRepository(db, slog.Default())
	start := time.Now().UTC()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = repo.StoreMessage(domain.Message{
			ID:        uuid.New(),
			Room:      "bench",
			Sender:    "alice",
			Content:   "benchmark message",
			Timestamp: start.Add(time.Duration(i)),
		})
	}
}
