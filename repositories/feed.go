package repositories

import (
	"errors"
	"fmt"
	"group-talk/domain"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	messagePrefix      = "feed:"
	messageIndexPrefix = "feedid:"
)

type IFeedRepository interface {
	StoreMessage(message domain.Message) error
	GetMessages(room domain.RoomID) ([]domain.Message, error)
	LastMessage(room domain.RoomID) (domain.Message, bool, error)
	DeleteMessage(id uuid.UUID) (domain.Message, error)
}

type FeedRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewFeedRepository(db *badger.DB, log *slog.Logger) FeedRepository {
	return FeedRepository{db: db, log: log}
}

// messageKey is formatted as "feed:{room}:{timestamp_padded}:{uuid}" so that a
// prefix scan returns a room's messages in timestamp order. The UUID breaks
// ties between messages sharing the same nanosecond.
func messageKey(message domain.Message) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d:%s",
		messagePrefix, message.Room, message.Timestamp.UnixNano(), message.ID))
}

func roomPrefix(room domain.RoomID) []byte {
	return []byte(fmt.Sprintf("%s%s:", messagePrefix, room))
}

// StoreMessage persists a message together with an ID index entry pointing at
// its time-ordered key.
func (f FeedRepository) StoreMessage(message domain.Message) error {
	bytes, err := encodeDocument(map[string]any{
		"id":        message.ID.String(),
		"room":      string(message.Room),
		"sender":    message.Sender,
		"content":   message.Content,
		"timestamp": formatTime(message.Timestamp),
	})
	if err != nil {
		return err
	}
	key := messageKey(message)
	return f.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, bytes); err != nil {
			return err
		}
		return txn.Set([]byte(messageIndexPrefix+message.ID.String()), key)
	})
}

// GetMessages returns every message of a room, oldest first.
func (f FeedRepository) GetMessages(room domain.RoomID) ([]domain.Message, error) {
	var messages []domain.Message
	err := f.db.View(func(txn *badger.Txn) error {
		prefix := roomPrefix(room)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			message, err := readMessage(it.Item())
			if err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	return messages, err
}

// LastMessage returns the most recent message of a room, if any.
func (f FeedRepository) LastMessage(room domain.RoomID) (domain.Message, bool, error) {
	var (
		last  domain.Message
		found bool
	)
	err := f.db.View(func(txn *badger.Txn) error {
		prefix := roomPrefix(room)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts right after the largest possible key of the room
		it.Seek(append(prefix, 0xFF))
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		message, err := readMessage(it.Item())
		if err != nil {
			return err
		}
		last, found = message, true
		return nil
	})
	return last, found, err
}

// DeleteMessage removes a message and its index entry, returning what was removed.
func (f FeedRepository) DeleteMessage(id uuid.UUID) (domain.Message, error) {
	var removed domain.Message
	err := f.db.Update(func(txn *badger.Txn) error {
		indexKey := []byte(messageIndexPrefix + id.String())
		indexItem, err := txn.Get(indexKey)
		if err != nil {
			return err
		}
		key, err := indexItem.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		if removed, err = readMessage(item); err != nil {
			return err
		}
		if err = txn.Delete(key); err != nil {
			return err
		}
		return txn.Delete(indexKey)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		f.log.Debug("Message already removed", "message_id", id)
	}
	return removed, err
}

func readMessage(item *badger.Item) (domain.Message, error) {
	var message domain.Message
	err := item.Value(func(value []byte) error {
		doc, err := decodeDocument(value)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(stringField(doc, "id"))
		if err != nil {
			return err
		}
		at, err := timeField(doc, "timestamp")
		if err != nil {
			return err
		}
		message = domain.Message{
			ID:        id,
			Room:      domain.RoomID(stringField(doc, "room")),
			Sender:    stringField(doc, "sender"),
			Content:   stringField(doc, "content"),
			Timestamp: at,
		}
		return nil
	})
	return message, err
}
