//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"group-talk/domain"
	"reflect"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IRemoteFeed is the remote ordered collection of messages of a room.
// Subscribe blocks until ctx is done; onChange calls are serialized for one subscription.
type IRemoteFeed interface {
	Subscribe(ctx context.Context, room domain.RoomID, onChange func(domain.ChangeSet)) error
	Append(ctx context.Context, room domain.RoomID, sender, content string) (domain.Message, error)
	AppendNotification(ctx context.Context, notification domain.PendingNotification) error
	List(ctx context.Context, room domain.RoomID) ([]domain.Message, error)
}

// IFeedWatcher delivers full snapshots of a room until ctx is done.
type IFeedWatcher interface {
	Watch(ctx context.Context, room domain.RoomID, onView func(domain.FeedView)) error
}

// IViewConsumer is anything kept up to date from feed snapshots (screen, search index).
type IViewConsumer interface {
	Apply(view domain.FeedView) error
}

type INotificationStore interface {
	PendingNotifications(ctx context.Context, limit int) ([]domain.PendingNotification, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
}

// IForeground reports whether the application currently has user-visible focus.
type IForeground interface {
	IsForeground() bool
}

type INotifier interface {
	NotifyMessage(message domain.Message) bool
}

type IAlertDisplayer interface {
	Display(alert domain.Alert) error
}

type IPushHandler interface {
	OnPush(payload map[string]string) error
}

type IPushPublisher interface {
	Publish(ctx context.Context, topic string, payload map[string]string) error
}

type IPushSubscriber interface {
	Subscribe(ctx context.Context, topic string, onPush func(map[string]string)) error
}

// ISessionStore is the device-local record of who is logged in and with
// which device token.
type ISessionStore interface {
	Save(username, token string) error
	Current() (string, error)
	Token() (string, error)
	Clear() error
	Wipe() error
}

// IAccounts is the account directory: registration, sign-in and the device
// tokens that authenticate every other remote call.
type IAccounts interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Refresh(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

type IAccountRepository interface {
	CreateAccount(username, passwordHash string) error
	GetAccount(username string) (domain.Account, error)
	UpdatePushToken(username, token string) error
}
