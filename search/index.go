// Package search keeps a full-text index of the room's messages.
package search

import (
	"context"
	"fmt"
	"group-talk/domain"
	"log/slog"
	"sync"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	fieldID        = "_id"
	fieldRoom      = "room"
	fieldSender    = "sender"
	fieldContent   = "content"
	fieldTimestamp = "timestamp"
)

// Index is an in-memory bluge index mirroring the last feed snapshot.
type Index struct {
	log     *slog.Logger
	writer  *bluge.Writer
	mu      sync.Mutex
	indexed map[uuid.UUID]struct{}
}

func NewIndex(log *slog.Logger) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	return &Index{log: log, writer: writer, indexed: make(map[uuid.UUID]struct{})}, nil
}

// Apply makes the index match a snapshot: new messages are added and messages
// gone from the feed are dropped.
func (i *Index) Apply(view domain.FeedView) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	current := lo.SliceToMap(view.Messages, func(m domain.Message) (uuid.UUID, struct{}) {
		return m.ID, struct{}{}
	})
	batch := bluge.NewBatch()
	for _, m := range view.Messages {
		if _, ok := i.indexed[m.ID]; ok {
			continue
		}
		doc := bluge.NewDocument(m.ID.String()).
			AddField(bluge.NewKeywordField(fieldRoom, string(m.Room)).StoreValue()).
			AddField(bluge.NewKeywordField(fieldSender, m.Sender).StoreValue()).
			AddField(bluge.NewTextField(fieldContent, m.Content).StoreValue()).
			AddField(bluge.NewKeywordField(fieldTimestamp, m.Timestamp.UTC().Format(time.RFC3339Nano)).StoreValue())
		batch.Update(doc.ID(), doc)
	}
	for id := range i.indexed {
		if _, ok := current[id]; !ok {
			batch.Delete(bluge.Identifier(id.String()))
		}
	}
	if err := i.writer.Batch(batch); err != nil {
		return fmt.Errorf("failed to index snapshot: %w", err)
	}
	i.indexed = current
	i.log.Debug("Search index updated", "room", view.Room, "messages", len(current))
	return nil
}

// Search returns the messages whose content matches text, best match first.
func (i *Index) Search(ctx context.Context, text string, limit int) ([]domain.Message, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewMatchQuery(text).SetField(fieldContent)
	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}

	var results []domain.Message
	match, err := matches.Next()
	for err == nil && match != nil {
		var message domain.Message
		var visitErr error
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case fieldID:
				message.ID, visitErr = uuid.ParseBytes(value)
			case fieldRoom:
				message.Room = domain.RoomID(value)
			case fieldSender:
				message.Sender = string(value)
			case fieldContent:
				message.Content = string(value)
			case fieldTimestamp:
				message.Timestamp, visitErr = time.Parse(time.RFC3339Nano, string(value))
			}
			return visitErr == nil
		})
		if err == nil {
			err = visitErr
		}
		if err != nil {
			break
		}
		results = append(results, message)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read search results: %w", err)
	}
	return results, nil
}

func (i *Index) Close() error {
	return i.writer.Close()
}
