package e2e

import (
	"context"
	"group-talk/account"
	"group-talk/domain"
	"group-talk/feed"
	"group-talk/internal"
	"group-talk/notification"
	"group-talk/push"
	"group-talk/repositories"
	"group-talk/runtime"
	"group-talk/runtime/workers"
	"group-talk/search"
	"group-talk/services"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

const room = domain.RoomID("group")

type alertRecorder struct {
	mu     sync.Mutex
	alerts []domain.Alert
}

func (r *alertRecorder) Display(alert domain.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert)
	return nil
}

func (r *alertRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.alerts)
}

func (r *alertRecorder) Last() domain.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.alerts[len(r.alerts)-1]
}

type device struct {
	name       string
	foreground *notification.Foreground
	alerts     *alertRecorder
	chat       *services.ChatService
}

type NotificationSuite struct {
	BaseGrpcSuite
	log *slog.Logger
}

func TestNotificationSuite(t *testing.T) {
	suite.Run(t, new(NotificationSuite))
}

func (s *NotificationSuite) SetupTest() {
	s.log = logs.GetLoggerFromLevel(slog.LevelWarn)
}

// username keeps accounts apart on a daemon that outlives the test.
func (s *NotificationSuite) username(d Daemon, name string) string {
	if d.Feed != nil {
		return name
	}
	return name + lo.RandomString(6, lo.AlphanumericCharset)
}

// signUp starts a device for name against the daemon, signed in, with its
// workers running until the test ends.
func (s *NotificationSuite) signUp(d Daemon, name string, path internal.NotificationPath, inForeground bool) device {
	t := s.T()
	ctx := context.Background()
	username := s.username(d, name)
	conn := s.GrpcConn(t, d.Addr, "Connect "+username)

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.WARNING))
	s.Require().NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	sessions := repositories.NewSessionStore(db, s.log)
	authService := services.NewAuthService(s.log, account.NewClient(conn), sessions)
	s.Require().NoError(authService.Register(ctx, username, "Secret123"))
	token, err := authService.Login(ctx, username, "Secret123")
	s.Require().NoError(err)

	remote := feed.NewRemoteClient(s.log, conn, token.String())
	foreground := notification.NewForeground(inForeground)
	alerts := &alertRecorder{}
	gateway := notification.NewGateway(s.log, alerts, foreground)
	index, err := search.NewIndex(s.log)
	s.Require().NoError(err)
	t.Cleanup(func() { _ = index.Close() })

	sup := workers.NewSupervisor(s.log).WithRestartInterval(10 * time.Millisecond)
	var synchronizer *runtime.Synchronizer
	if path == internal.FeedPath {
		synchronizer = runtime.NewSynchronizer(s.log, remote, gateway, foreground, sessions)
	} else {
		synchronizer = runtime.NewSynchronizer(s.log, remote, nil, foreground, sessions)
		sup.Add(workers.NewPushListener(s.log, push.NewClient(s.log, conn, token.String()), gateway, topic))
	}
	sup.Add(workers.NewFeedViewWorker(s.log, synchronizer, room, index))

	workersCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		sup.Run(workersCtx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return device{
		name:       username,
		foreground: foreground,
		alerts:     alerts,
		chat:       services.NewChatService(synchronizer, remote, index, sessions, room, 10),
	}
}

// waitSubscribers holds until n devices watch the room, so that nothing sent
// next lands in their initial snapshot.
func (s *NotificationSuite) waitSubscribers(d Daemon, n int) {
	if d.Feed == nil {
		// External daemon, give the subscriptions a moment
		time.Sleep(200 * time.Millisecond)
		return
	}
	s.Require().Eventually(func() bool { return d.Feed.Subscribers(room) == n }, 2*time.Second, 10*time.Millisecond)
}

func (s *NotificationSuite) waitListeners(d Daemon, n int) {
	if d.Registry == nil {
		time.Sleep(200 * time.Millisecond)
		return
	}
	s.Require().Eventually(func() bool { return d.Registry.Count(topic) == n }, 2*time.Second, 10*time.Millisecond)
}

func (s *NotificationSuite) TestFeedPath_Alerts_Background_Device_Once() {
	t := s.T()
	d := s.StartDaemon(s.log)
	alice := s.signUp(d, "alice", internal.FeedPath, true)
	bob := s.signUp(d, "bob", internal.FeedPath, false)
	s.waitSubscribers(d, 2)
	ctx := context.Background()

	s.Step(t, "alice writes while bob is away")
	_, err := alice.chat.Send(ctx, "hi")
	s.Require().NoError(err)

	s.Require().Eventually(func() bool { return bob.alerts.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
	s.Equal(alice.name, bob.alerts.Last().Title)
	s.Equal("hi", bob.alerts.Last().Body)
	s.Zero(alice.alerts.Len())

	s.Step(t, "bob comes back, alice writes again")
	bob.foreground.Set(true)
	_, err = alice.chat.Send(ctx, "there")
	s.Require().NoError(err)

	s.Require().Eventually(func() bool {
		history, err := bob.chat.History(ctx)
		return err == nil && len(history) == 2
	}, 2*time.Second, 10*time.Millisecond)
	s.Never(func() bool { return bob.alerts.Len() > 1 }, 200*time.Millisecond, 20*time.Millisecond)
}

func (s *NotificationSuite) TestPushPath_Relays_Records_To_Other_Devices() {
	t := s.T()
	d := s.StartDaemon(s.log)
	alice := s.signUp(d, "alice", internal.PushPath, false)
	bob := s.signUp(d, "bob", internal.PushPath, false)
	s.waitListeners(d, 2)
	ctx := context.Background()

	s.Step(t, "alice writes, both devices are in background")
	_, err := alice.chat.Send(ctx, "lunch?")
	s.Require().NoError(err)

	// The relay publishes once, the sender's own listener is skipped
	s.Require().Eventually(func() bool { return bob.alerts.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
	s.Equal(alice.name, bob.alerts.Last().Title)
	s.Contains(bob.alerts.Last().Body, "lunch?\nsent at: ")
	s.Never(func() bool { return bob.alerts.Len() > 1 || alice.alerts.Len() > 0 }, 300*time.Millisecond, 20*time.Millisecond)

	if d.Feed == nil {
		return
	}
	s.Step(t, "every record ends processed")
	s.Require().Eventually(func() bool {
		pending, err := d.Feed.PendingNotifications(ctx, 0)
		return err == nil && len(pending) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
