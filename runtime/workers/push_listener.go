package workers

import (
	"context"
	"fmt"
	"group-talk/contract"
	"group-talk/errors"
	"log/slog"
)

// PushListener keeps a subscription on the push topic open and forwards every
// payload to the notification gateway.
type PushListener struct {
	log        *slog.Logger
	subscriber contract.IPushSubscriber
	handler    contract.IPushHandler
	topic      string
}

func NewPushListener(log *slog.Logger, subscriber contract.IPushSubscriber,
	handler contract.IPushHandler, topic string) *PushListener {
	return &PushListener{log: log, subscriber: subscriber, handler: handler, topic: topic}
}

// Run returns an error when the stream ends on the server side, so the
// supervisor subscribes again.
func (w *PushListener) Run(ctx context.Context) error {
	w.log.Info("Starting push listener", "topic", w.topic)
	err := w.subscriber.Subscribe(ctx, w.topic, func(payload map[string]string) {
		// Malformed payloads are logged by the gateway and dropped
		_ = w.handler.OnPush(payload)
	})
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%w: push stream closed on topic %s", errors.ErrRemote, w.topic)
}
