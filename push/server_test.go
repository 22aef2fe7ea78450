package push

import (
	"context"
	"group-talk/auth"
	apperrors "group-talk/errors"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const topic = "chat_group"

type harness struct {
	registry *Registry
	server   *Server
	signer   auth.TokenSigner
	conn     *grpc.ClientConn
}

func startServer(t *testing.T) harness {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	signer := auth.NewTokenSigner("test-secret", time.Hour)
	registry := NewRegistry()

	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer(
		grpc.UnaryInterceptor(auth.UnaryInterceptor(signer)),
		grpc.StreamInterceptor(auth.StreamInterceptor(signer)),
	)
	pushServer := NewServer(log, registry, 10)
	RegisterPushServiceServer(server, pushServer)
	go func() { _ = server.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})
	return harness{registry: registry, server: pushServer, signer: signer, conn: conn}
}

func (h harness) client(t *testing.T, username string) *Client {
	token, err := h.signer.Generate(username)
	require.NoError(t, err)
	return NewClient(slog.Default(), h.conn, token)
}

type inbox struct {
	mu       sync.Mutex
	payloads []map[string]string
}

func (i *inbox) add(p map[string]string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.payloads = append(i.payloads, p)
}

func (i *inbox) len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.payloads)
}

func (i *inbox) first() map[string]string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.payloads[0]
}

// listen subscribes in the background and waits until the server registered the listener.
func listen(t *testing.T, h harness, username string, expected int) (*inbox, context.CancelFunc, <-chan error) {
	ctx, cancel := context.WithCancel(context.Background())
	box := &inbox{}
	done := make(chan error, 1)
	client := h.client(t, username)
	go func() { done <- client.Subscribe(ctx, topic, box.add) }()
	require.Eventually(t, func() bool { return h.registry.Count(topic) == expected }, time.Second, 5*time.Millisecond)
	t.Cleanup(cancel)
	return box, cancel, done
}

func TestPush_Publish_Reaches_Other_Listeners(t *testing.T) {
	req := require.New(t)
	h := startServer(t)

	// Given bob and alice listen on the group topic
	bobBox, _, _ := listen(t, h, "bob", 1)
	aliceBox, _, _ := listen(t, h, "alice", 2)

	// When alice publishes a payload
	payload := map[string]string{KeySender: "alice", KeyContent: "hi", KeyTimestamp: "1700000000000"}
	req.NoError(h.client(t, "alice").Publish(context.Background(), topic, payload))

	// Then bob receives it and alice doesn't
	req.Eventually(func() bool { return bobBox.len() == 1 }, time.Second, 5*time.Millisecond)
	req.Equal(payload, bobBox.first())
	req.Never(func() bool { return aliceBox.len() > 0 }, 100*time.Millisecond, 10*time.Millisecond)
}

func TestPush_Subscribe_Returns_Nil_When_Canceled(t *testing.T) {
	req := require.New(t)
	h := startServer(t)
	_, cancel, done := listen(t, h, "bob", 1)

	// When the subscriber cancels
	cancel()

	// Then Subscribe returns without error and the listener is gone
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("subscribe did not return")
	}
	req.Eventually(func() bool { return h.registry.Count(topic) == 0 }, time.Second, 5*time.Millisecond)
}

func TestPush_Rejects_Invalid_Token(t *testing.T) {
	req := require.New(t)
	h := startServer(t)
	client := NewClient(slog.Default(), h.conn, "not-a-token")

	t.Run("should reject publish", func(t *testing.T) {
		req := require.New(t)
		err := client.Publish(context.Background(), topic, map[string]string{KeySender: "mallory"})
		req.ErrorIs(err, apperrors.ErrRemote)
	})

	t.Run("should reject listen", func(t *testing.T) {
		req := require.New(t)
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		err := client.Subscribe(ctx, topic, func(map[string]string) {})
		req.ErrorIs(err, apperrors.ErrRemote)
	})
	req.Zero(h.registry.Count(topic))
}

func TestPush_Publish_Requires_Topic(t *testing.T) {
	req := require.New(t)
	h := startServer(t)
	err := h.client(t, "alice").Publish(context.Background(), "", map[string]string{KeySender: "alice"})
	req.ErrorIs(err, apperrors.ErrRemote)
}

func TestPush_Publish_Refuses_Another_Sender(t *testing.T) {
	req := require.New(t)
	h := startServer(t)
	bobBox, _, _ := listen(t, h, "bob", 1)

	t.Run("should refuse a payload signed for someone else", func(t *testing.T) {
		req := require.New(t)
		// Given mallory's device claims alice wrote the payload
		payload := map[string]string{KeySender: "alice", KeyContent: "send me money", KeyTimestamp: "1700000000000"}

		// When it publishes
		err := h.client(t, "mallory").Publish(context.Background(), topic, payload)

		// Then the server refuses
		req.ErrorIs(err, apperrors.ErrRemote)
	})

	t.Run("should answer permission denied", func(t *testing.T) {
		req := require.New(t)
		ctx := context.WithValue(context.Background(), auth.UsernameKey, "mallory")
		request, err := publishRequest(topic, map[string]string{KeySender: "alice"})
		req.NoError(err)

		_, err = h.server.Publish(ctx, request)

		req.Equal(codes.PermissionDenied, status.Code(err))
	})

	req.Never(func() bool { return bobBox.len() > 0 }, 100*time.Millisecond, 10*time.Millisecond)
}

func TestPush_LocalPublisher_Skips_Sender_Devices(t *testing.T) {
	req := require.New(t)
	h := startServer(t)
	bobBox, _, _ := listen(t, h, "bob", 1)
	aliceBox, _, _ := listen(t, h, "alice", 2)

	// When the daemon relays a record written by alice
	payload := map[string]string{KeySender: "alice", KeyContent: "hi", KeyTimestamp: "1700000000000"}
	req.NoError(NewLocalPublisher(h.server).Publish(context.Background(), topic, payload))

	// Then only bob's device hears about it
	req.Eventually(func() bool { return bobBox.len() == 1 }, time.Second, 5*time.Millisecond)
	req.Never(func() bool { return aliceBox.len() > 0 }, 100*time.Millisecond, 10*time.Millisecond)
}
