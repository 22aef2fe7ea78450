package repositories

import (
	"errors"
	"group-talk/domain"
	apperrors "group-talk/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const accountPrefix = "account:"

type AccountRepository struct {
	db *badger.DB
}

func NewAccountRepository(db *badger.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateAccount persists a new account. The password must already be hashed.
func (a *AccountRepository) CreateAccount(username, passwordHash string) error {
	return a.db.Update(func(txn *badger.Txn) error {
		key := []byte(accountPrefix + username)
		if _, err := txn.Get(key); err == nil {
			return apperrors.ErrUserAlreadyExists
		}
		return writeAccount(txn, domain.Account{
			Username:     username,
			PasswordHash: passwordHash,
			CreatedAt:    time.Now().UTC(),
		})
	})
}

// GetAccount returns badger.ErrKeyNotFound for an unknown username.
func (a *AccountRepository) GetAccount(username string) (domain.Account, error) {
	var account domain.Account
	err := a.db.View(func(txn *badger.Txn) error {
		var err error
		account, err = readAccount(txn, username)
		return err
	})
	return account, err
}

// UpdatePushToken stores the device token used by the push channel.
// An empty token unregisters the device.
func (a *AccountRepository) UpdatePushToken(username, token string) error {
	return a.db.Update(func(txn *badger.Txn) error {
		account, err := readAccount(txn, username)
		if err != nil {
			return err
		}
		account.PushToken = token
		return writeAccount(txn, account)
	})
}

func readAccount(txn *badger.Txn, username string) (domain.Account, error) {
	item, err := txn.Get([]byte(accountPrefix + username))
	if err != nil {
		return domain.Account{}, err
	}
	var account domain.Account
	err = item.Value(func(value []byte) error {
		doc, err := decodeDocument(value)
		if err != nil {
			return err
		}
		createdAt, err := timeField(doc, "created_at")
		if err != nil {
			return err
		}
		account = domain.Account{
			Username:     stringField(doc, "username"),
			PasswordHash: stringField(doc, "password_hash"),
			PushToken:    stringField(doc, "push_token"),
			CreatedAt:    createdAt,
		}
		return nil
	})
	return account, err
}

func writeAccount(txn *badger.Txn, account domain.Account) error {
	bytes, err := encodeDocument(map[string]any{
		"username":      account.Username,
		"password_hash": account.PasswordHash,
		"push_token":    account.PushToken,
		"created_at":    formatTime(account.CreatedAt),
	})
	if err != nil {
		return err
	}
	return txn.Set([]byte(accountPrefix+account.Username), bytes)
}

// IsNotFound reports whether err means the requested document does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, badger.ErrKeyNotFound)
}
