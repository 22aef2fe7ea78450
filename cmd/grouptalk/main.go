package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"group-talk/account"
	"group-talk/auth"
	"group-talk/contract"
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
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Exit codes to provide meaningful status to the operating system.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "grouptalk terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and drives the chat until /quit, /logout or a signal.
// Deferred cleanups always run before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.ClientConfig
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Device store: session and token must survive a crash right after login
	device, err := badger.Open(buildBadgerOpts(config.SessionFilepath, logger, ctx).WithSyncWrites(true))
	if err != nil {
		return exitRuntime, fmt.Errorf("session store opening failed: %w", err)
	}
	defer func() { _ = device.Close() }()
	sessions := repositories.NewSessionStore(device, logger)

	// 3. Backend: groupd over gRPC, or a store owned by this process
	var remote *backend
	if config.Remote() {
		remote, err = dialServer(config, logger)
	} else {
		remote, err = openStandalone(ctx, config, logger)
	}
	if err != nil {
		return exitRuntime, err
	}
	defer remote.close()
	authService := services.NewAuthService(logger, remote.accounts, sessions)

	in := bufio.NewScanner(os.Stdin)
	username, err := signIn(ctx, in, os.Stdout, authService)
	if errors.Is(err, errInputClosed) {
		return exitOK, nil
	}
	if err != nil {
		return exitRuntime, err
	}
	token, err := authService.DeviceToken()
	if err != nil {
		return exitRuntime, err
	}
	room := domain.RoomID(config.Room)
	feedClient := remote.feed(token.String())

	foreground := notification.NewForeground(true)
	gateway := notification.NewGateway(logger, notification.NewTerminalDisplayer(os.Stdout, true), foreground)
	index, err := search.NewIndex(logger)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = index.Close() }()

	// Exactly one path produces alerts
	var notifier contract.INotifier
	if config.NotificationPath == internal.FeedPath {
		notifier = gateway
	}
	synchronizer := runtime.NewSynchronizer(logger, feedClient, notifier, foreground, sessions)
	chatService := services.NewChatService(synchronizer, feedClient, index, sessions, room, config.SearchLimit)
	screen := NewScreen(os.Stdout, true, username)

	// 4. Workers
	sup := workers.NewSupervisor(logger).WithRestartInterval(config.RestartInterval)
	sup.Add(workers.NewFeedViewWorker(logger, synchronizer, room, screen, index))
	// Validate keeps the push path to remote mode, where groupd relays
	if config.NotificationPath == internal.PushPath {
		pushClient := push.NewClient(logger, remote.conn, token.String())
		sup.Add(workers.NewPushListener(logger, pushClient, gateway, config.PushTopic))
	}

	workersCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()
	// Leaving the push topic is stopping its listener
	authService.OnLogout(cancelWorkers)
	done := make(chan struct{})
	go func() {
		sup.Run(workersCtx)
		close(done)
	}()

	// 5. Chat loop
	chat := &chatLoop{screen: screen, chat: chatService, auth: authService, foreground: foreground}
	err = chat.run(ctx, in)
	cancelWorkers()
	<-done
	if err != nil {
		return exitRuntime, err
	}
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

// backend is what the client talks to once signed in.
type backend struct {
	accounts contract.IAccounts
	feed     func(token string) contract.IRemoteFeed
	conn     *grpc.ClientConn
	close    func()
}

func dialServer(config internal.ClientConfig, logger *slog.Logger) (*backend, error) {
	conn, err := grpc.NewClient(config.ServerAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("server client failed: %w", err)
	}
	logger.Info("Using groupd", "address", config.ServerAddr)
	return &backend{
		accounts: account.NewClient(conn),
		feed: func(token string) contract.IRemoteFeed {
			return feed.NewRemoteClient(logger, conn, token)
		},
		conn:  conn,
		close: func() { _ = conn.Close() },
	}, nil
}

// openStandalone owns the shared store: no other process may open it meanwhile.
func openStandalone(ctx context.Context, config internal.ClientConfig, logger *slog.Logger) (*backend, error) {
	shared, err := badger.Open(buildBadgerOpts(config.BadgerFilepath, logger, ctx))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(shared, config.DebugPort, endpoint, repositories.DocumentMapper)
	}
	feedClient := feed.NewClient(logger,
		repositories.NewFeedRepository(shared, logger),
		repositories.NewNotificationRepository(shared, logger))
	return &backend{
		accounts: services.NewAccountService(logger, repositories.NewAccountRepository(shared),
			auth.NewTokenSigner(config.AuthSecret, config.AuthTokenDuration)),
		feed: func(string) contract.IRemoteFeed { return feedClient },
		close: func() {
			logger.Info("Closing BadgerDB...")
			_ = shared.Close()
		},
	}, nil
}

func buildBadgerOpts(path string, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(path)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}
