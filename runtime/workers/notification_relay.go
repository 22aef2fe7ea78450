package workers

import (
	"context"
	"group-talk/contract"
	"group-talk/push"
	"log/slog"
	"time"
)

// NotificationRelay drains the pending notification records and publishes
// each of them on the push topic. A record is marked processed only once
// published, so a failed round is retried on the next tick.
type NotificationRelay struct {
	log       *slog.Logger
	store     contract.INotificationStore
	publisher contract.IPushPublisher
	topic     string
	interval  time.Duration
	batchSize int
}

func NewNotificationRelay(log *slog.Logger, store contract.INotificationStore, publisher contract.IPushPublisher,
	topic string, interval time.Duration, batchSize int) *NotificationRelay {
	return &NotificationRelay{
		log:       log,
		store:     store,
		publisher: publisher,
		topic:     topic,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (w *NotificationRelay) Run(ctx context.Context) error {
	w.log.Info("Starting notification relay", "topic", w.topic, "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.Relay(ctx); err != nil {
				w.log.Warn("Notification relay round failed", "topic", w.topic, "error", err)
			}
		}
	}
}

// Relay publishes one batch of pending records, oldest first, and stops at the
// first failure to keep the order.
func (w *NotificationRelay) Relay(ctx context.Context) error {
	pending, err := w.store.PendingNotifications(ctx, w.batchSize)
	if err != nil {
		return err
	}
	for _, notification := range pending {
		if err = w.publisher.Publish(ctx, w.topic, push.EncodePayload(notification)); err != nil {
			return err
		}
		if err = w.store.MarkProcessed(ctx, notification.ID); err != nil {
			return err
		}
		w.log.Debug("Notification relayed", "message_id", notification.MessageID, "topic", w.topic)
	}
	return nil
}
