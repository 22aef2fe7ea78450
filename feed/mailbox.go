package feed

import (
	"group-talk/domain"
	"sync"

	"github.com/gammazero/deque"
)

// mailbox queues change sets for one subscription. Posting never blocks the
// writer; the subscription goroutine drains the queue in posting order.
type mailbox struct {
	mu      sync.Mutex
	pending deque.Deque[domain.ChangeSet]
	ready   chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{ready: make(chan struct{}, 1)}
}

func (m *mailbox) post(cs domain.ChangeSet) {
	m.mu.Lock()
	m.pending.PushBack(cs)
	m.mu.Unlock()
	// One pending signal is enough, drain takes everything
	select {
	case m.ready <- struct{}{}:
	default:
	}
}

func (m *mailbox) drain() []domain.ChangeSet {
	m.mu.Lock()
	defer m.mu.Unlock()
	batch := make([]domain.ChangeSet, 0, m.pending.Len())
	for m.pending.Len() > 0 {
		batch = append(batch, m.pending.PopFront())
	}
	return batch
}
