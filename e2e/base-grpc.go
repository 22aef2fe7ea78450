package e2e

import (
	"context"
	"fmt"
	"group-talk/account"
	"group-talk/auth"
	"group-talk/feed"
	"group-talk/push"
	"group-talk/repositories"
	"group-talk/runtime/workers"
	"group-talk/services"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const topic = "chat_group"

type BaseGrpcSuite struct {
	suite.Suite
	Config Config
}

// Daemon is the groupd every device of a test talks to. Feed and Registry
// are only set for an in-process daemon.
type Daemon struct {
	Addr     string
	Feed     *feed.Client
	Registry *push.Registry
}

func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// StartDaemon serves the feed, the accounts and the push channel from one
// in-memory store, with the notification relay running, until the test ends.
func (s *BaseGrpcSuite) StartDaemon(log *slog.Logger) Daemon {
	t := s.T()
	if s.Config.ServerAddr != "" {
		return Daemon{Addr: s.Config.ServerAddr}
	}

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.WARNING))
	s.Require().NoError(err)
	signer := auth.NewTokenSigner(s.Config.AuthSecret, time.Hour)
	feedClient := feed.NewClient(log, repositories.NewFeedRepository(db, log), repositories.NewNotificationRepository(db, log))
	registry := push.NewRegistry()
	pushServer := push.NewServer(log, registry, 16)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	server := grpc.NewServer(
		grpc.UnaryInterceptor(auth.UnaryInterceptor(signer, account.PublicMethods...)),
		grpc.StreamInterceptor(auth.StreamInterceptor(signer)),
	)
	feed.RegisterFeedServiceServer(server, feed.NewServer(log, feedClient))
	account.RegisterAccountServiceServer(server, account.NewServer(log,
		services.NewAccountService(log, repositories.NewAccountRepository(db), signer)))
	push.RegisterPushServiceServer(server, pushServer)
	go func() { _ = server.Serve(listener) }()

	sup := workers.NewSupervisor(log).WithRestartInterval(10 * time.Millisecond)
	sup.Add(workers.NewNotificationRelay(log, feedClient, push.NewLocalPublisher(pushServer), topic, 10*time.Millisecond, 10))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(done)
	}()

	t.Cleanup(func() {
		server.Stop()
		cancel()
		<-done
		_ = db.Close()
	})
	return Daemon{Addr: listener.Addr().String(), Feed: feedClient, Registry: registry}
}

// Step prints a colorized header for a scenario step.
func (s *BaseGrpcSuite) Step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseGrpcSuite) GrpcConn(t *testing.T, addr, name string) *grpc.ClientConn {
	s.Step(t, name)

	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+addr)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}
