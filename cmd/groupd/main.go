package main

import (
	"context"
	"errors"
	"fmt"
	"group-talk/account"
	"group-talk/auth"
	"group-talk/feed"
	"group-talk/internal"
	"group-talk/push"
	"group-talk/repositories"
	"group-talk/runtime/workers"
	"group-talk/services"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "groupd terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run owns the shared store and serves the feed, the accounts and the push
// channel to every device until a signal is received or the server fails.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.ServerConfig
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Database: badger locks its directory, groupd is its only writer
	options := badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING)
	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	}
	db, err := badger.Open(options)
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, repositories.DocumentMapper)
	}

	// 4. Services
	signer := auth.NewTokenSigner(config.AuthSecret, config.AuthTokenDuration)
	feedClient := feed.NewClient(logger,
		repositories.NewFeedRepository(db, logger),
		repositories.NewNotificationRepository(db, logger))
	accounts := services.NewAccountService(logger, repositories.NewAccountRepository(db), signer)
	pushServer := push.NewServer(logger, push.NewRegistry(), config.ListenerBufferSize)

	// 5. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			auth.UnaryInterceptor(signer, account.PublicMethods...),
		),
		grpc.StreamInterceptor(auth.StreamInterceptor(signer)),
	)
	feed.RegisterFeedServiceServer(s, feed.NewServer(logger, feedClient))
	account.RegisterAccountServiceServer(s, account.NewServer(logger, accounts))
	push.RegisterPushServiceServer(s, pushServer)

	// 6. Workers: one relay for every device
	sup := workers.NewSupervisor(logger).WithRestartInterval(config.RestartInterval)
	sup.Add(workers.NewNotificationRelay(logger, feedClient, push.NewLocalPublisher(pushServer),
		config.PushTopic, config.RelayInterval, config.RelayBatchSize))
	workersCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()
	done := make(chan struct{})
	go func() {
		sup.Run(workersCtx)
		close(done)
	}()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting groupd", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	code := exitOK
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err = <-errChan:
		code = exitRuntime
	}

	// Subscribe and Listen streams never end on their own
	logger.Info("Shutting down...")
	s.Stop()
	cancelWorkers()
	<-done
	if err != nil {
		return code, err
	}
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}
