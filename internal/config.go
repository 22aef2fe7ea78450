package internal

import (
	"fmt"
	"strings"
	"time"
)

// NotificationPath selects the single path alerts take.
type NotificationPath string

const (
	// FeedPath alerts straight from feed change sets.
	FeedPath NotificationPath = "feed"
	// PushPath relays notification records through the push channel.
	PushPath NotificationPath = "push"
)

// ClientConfig configures the chat client.
// With SERVER_ADDR set the client talks to groupd; otherwise it runs
// standalone on the BADGER_FILEPATH store.
type ClientConfig struct {
	ServerAddr        string           `env:"SERVER_ADDR"`
	BadgerFilepath    string           `env:"BADGER_FILEPATH"`
	SessionFilepath   string           `env:"SESSION_FILEPATH,required=true"`
	LogLevel          string           `env:"LOG_LEVEL,default=INFO"`
	Room              string           `env:"ROOM,default=group"`
	PushTopic         string           `env:"PUSH_TOPIC,default=chat_group"`
	NotificationPath  NotificationPath `env:"NOTIFICATION_PATH,default=feed"`
	AuthTokenDuration time.Duration    `env:"AUTH_TOKEN_DURATION,default=24h"`
	AuthSecret        string           `env:"AUTH_SECRET"`
	RestartInterval   time.Duration    `env:"RESTART_INTERVAL,default=200ms"`
	SearchLimit       int              `env:"SEARCH_LIMIT,default=10"`
	DebugPort         int              `env:"DEBUG_PORT,default=8081"`
}

// Remote reports whether the feed and accounts are served by groupd.
func (c ClientConfig) Remote() bool {
	return c.ServerAddr != ""
}

func (c ClientConfig) Validate() error {
	switch c.NotificationPath {
	case FeedPath, PushPath:
	default:
		return fmt.Errorf("NOTIFICATION_PATH must be %q or %q, got %q", FeedPath, PushPath, c.NotificationPath)
	}
	if err := validateRoom(c.Room); err != nil {
		return err
	}
	if c.SearchLimit <= 0 {
		return fmt.Errorf("SEARCH_LIMIT must be positive, got %d", c.SearchLimit)
	}
	if c.RestartInterval <= 0 {
		return fmt.Errorf("RESTART_INTERVAL must be positive, got %s", c.RestartInterval)
	}
	if c.Remote() {
		if c.BadgerFilepath != "" {
			return fmt.Errorf("set either SERVER_ADDR or BADGER_FILEPATH, not both")
		}
		return nil
	}
	// Standalone: this process owns the store and signs its own tokens
	if c.NotificationPath == PushPath {
		return fmt.Errorf("NOTIFICATION_PATH=%s needs SERVER_ADDR", PushPath)
	}
	if c.BadgerFilepath == "" {
		return fmt.Errorf("BADGER_FILEPATH is required without SERVER_ADDR")
	}
	if c.AuthSecret == "" {
		return fmt.Errorf("AUTH_SECRET is required without SERVER_ADDR")
	}
	if c.AuthTokenDuration <= 0 {
		return fmt.Errorf("AUTH_TOKEN_DURATION must be positive, got %s", c.AuthTokenDuration)
	}
	if c.BadgerFilepath == c.SessionFilepath {
		return fmt.Errorf("SESSION_FILEPATH must differ from BADGER_FILEPATH")
	}
	return nil
}

// ServerConfig configures groupd, the daemon owning the shared feed.
type ServerConfig struct {
	BadgerFilepath     string        `env:"BADGER_FILEPATH,required=true"`
	Host               string        `env:"HOST,default=0.0.0.0"`
	Port               int           `env:"PORT,default=9090"`
	LogLevel           string        `env:"LOG_LEVEL,default=INFO"`
	AuthSecret         string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration  time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	ListenerBufferSize int           `env:"LISTENER_BUFFER_SIZE,default=64"`
	PushTopic          string        `env:"PUSH_TOPIC,default=chat_group"`
	RelayInterval      time.Duration `env:"RELAY_INTERVAL,default=500ms"`
	RelayBatchSize     int           `env:"RELAY_BATCH_SIZE,default=50"`
	RestartInterval    time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	DebugPort          int           `env:"DEBUG_PORT,default=8082"`
}

func (c ServerConfig) Validate() error {
	// The relay ticker panics on a non-positive period
	if c.RelayInterval <= 0 {
		return fmt.Errorf("RELAY_INTERVAL must be positive, got %s", c.RelayInterval)
	}
	if c.RestartInterval <= 0 {
		return fmt.Errorf("RESTART_INTERVAL must be positive, got %s", c.RestartInterval)
	}
	if c.RelayBatchSize <= 0 {
		return fmt.Errorf("RELAY_BATCH_SIZE must be positive, got %d", c.RelayBatchSize)
	}
	if c.ListenerBufferSize <= 0 {
		return fmt.Errorf("LISTENER_BUFFER_SIZE must be positive, got %d", c.ListenerBufferSize)
	}
	if c.AuthTokenDuration <= 0 {
		return fmt.Errorf("AUTH_TOKEN_DURATION must be positive, got %s", c.AuthTokenDuration)
	}
	if c.PushTopic == "" {
		return fmt.Errorf("PUSH_TOPIC must not be empty")
	}
	return nil
}

// Room names are key segments
func validateRoom(room string) error {
	if room == "" || strings.Contains(room, ":") {
		return fmt.Errorf("ROOM must be non-empty and free of ':', got %q", room)
	}
	return nil
}
