package repositories

import (
	"fmt"
	"group-talk/domain"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	notificationPrefix        = "notification:"
	notificationIndexPrefix   = "notificationid:"
	notificationPendingPrefix = "notificationpending:"
)

// NotificationRepository holds the notifications side collection written
// after each successful send.
type NotificationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewNotificationRepository(db *badger.DB, log *slog.Logger) NotificationRepository {
	return NotificationRepository{db: db, log: log}
}

func notificationKey(n domain.PendingNotification) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", notificationPrefix, n.Timestamp.UnixNano(), n.ID))
}

// pendingKey shares the record key's time ordering.
func pendingKey(recordKey []byte) []byte {
	return append([]byte(notificationPendingPrefix), recordKey[len(notificationPrefix):]...)
}

func (r NotificationRepository) StoreNotification(n domain.PendingNotification) error {
	key := notificationKey(n)
	return r.db.Update(func(txn *badger.Txn) error {
		if err := writeNotification(txn, key, n); err != nil {
			return err
		}
		if err := txn.Set([]byte(notificationIndexPrefix+n.ID.String()), key); err != nil {
			return err
		}
		if n.Processed {
			return nil
		}
		return txn.Set(pendingKey(key), key)
	})
}

// PendingNotifications returns up to limit unprocessed records, oldest first.
// A limit <= 0 means no limit. Only the pending index is scanned, so processed
// history costs nothing.
func (r NotificationRepository) PendingNotifications(limit int) ([]domain.PendingNotification, error) {
	var pending []domain.PendingNotification
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(notificationPendingPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(pending) == limit {
				break
			}
			key, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			item, err := txn.Get(key)
			if err != nil {
				return err
			}
			n, err := readNotification(item)
			if err != nil {
				return err
			}
			pending = append(pending, n)
		}
		return nil
	})
	return pending, err
}

// PendingCount returns the size of the pending index.
func (r NotificationRepository) PendingCount() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(notificationPendingPrefix)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func (r NotificationRepository) MarkProcessed(id uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		indexItem, err := txn.Get([]byte(notificationIndexPrefix + id.String()))
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
		n, err := readNotification(item)
		if err != nil {
			return err
		}
		n.Processed = true
		if err = writeNotification(txn, key, n); err != nil {
			return err
		}
		return txn.Delete(pendingKey(key))
	})
}

func writeNotification(txn *badger.Txn, key []byte, n domain.PendingNotification) error {
	bytes, err := encodeDocument(map[string]any{
		"id":         n.ID.String(),
		"message_id": n.MessageID.String(),
		"room":       string(n.Room),
		"sender":     n.Sender,
		"content":    n.Content,
		"timestamp":  formatTime(n.Timestamp),
		"processed":  n.Processed,
	})
	if err != nil {
		return err
	}
	return txn.Set(key, bytes)
}

func readNotification(item *badger.Item) (domain.PendingNotification, error) {
	var n domain.PendingNotification
	err := item.Value(func(value []byte) error {
		doc, err := decodeDocument(value)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(stringField(doc, "id"))
		if err != nil {
			return err
		}
		messageID, err := uuid.Parse(stringField(doc, "message_id"))
		if err != nil {
			return err
		}
		at, err := timeField(doc, "timestamp")
		if err != nil {
			return err
		}
		n = domain.PendingNotification{
			ID:        id,
			MessageID: messageID,
			Room:      domain.RoomID(stringField(doc, "room")),
			Sender:    stringField(doc, "sender"),
			Content:   stringField(doc, "content"),
			Timestamp: at,
			Processed: boolField(doc, "processed"),
		}
		return nil
	})
	return n, err
}
