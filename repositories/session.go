package repositories

import (
	"errors"
	apperrors "group-talk/errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const sessionPrefix = "session:"

var (
	sessionUsernameKey = []byte(sessionPrefix + "username")
	sessionTokenKey    = []byte(sessionPrefix + "token")
)

// SessionStore records which user is logged in on this device.
// Durability across restarts relies on the database being opened with SyncWrites.
type SessionStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSessionStore(db *badger.DB, log *slog.Logger) *SessionStore {
	return &SessionStore{db: db, log: log}
}

// Save records the user and its device token in one transaction.
func (s *SessionStore) Save(username, token string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(sessionUsernameKey, []byte(username)); err != nil {
			return err
		}
		return txn.Set(sessionTokenKey, []byte(token))
	})
}

// Current returns ErrNoSession when nobody is logged in.
func (s *SessionStore) Current() (string, error) {
	return s.read(sessionUsernameKey)
}

// Token returns the device token of the session, ErrNoSession when nobody is logged in.
func (s *SessionStore) Token() (string, error) {
	return s.read(sessionTokenKey)
}

func (s *SessionStore) read(key []byte) (string, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", apperrors.ErrNoSession
	}
	return string(value), err
}

// Clear removes every session entry.
func (s *SessionStore) Clear() error {
	return s.db.DropPrefix([]byte(sessionPrefix))
}

// Wipe drops all local application data, restoring a freshly installed state.
func (s *SessionStore) Wipe() error {
	s.log.Warn("Wiping all local application data")
	return s.db.DropAll()
}
