package push

import (
	"fmt"
	"group-talk/domain"
	"group-talk/errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Payload keys as carried by the push channel.
const (
	KeyMessageID = "message_id"
	KeySender    = "sender"
	KeyContent   = "content"
	KeyTimestamp = "timestamp" // epoch milliseconds
)

var validate = validator.New()

// EncodePayload turns a pending notification into the key-value form the push
// channel carries.
func EncodePayload(n domain.PendingNotification) map[string]string {
	return map[string]string{
		KeyMessageID: n.MessageID.String(),
		KeySender:    n.Sender,
		KeyContent:   n.Content,
		KeyTimestamp: strconv.FormatInt(n.Timestamp.UnixMilli(), 10),
	}
}

// DecodePayload validates an untyped payload. Missing or unparsable fields
// fail with ErrMalformedPushPayload instead of being defaulted.
// message_id is optional; when present it must be a UUID.
func DecodePayload(raw map[string]string) (domain.PushPayload, error) {
	payload := domain.PushPayload{
		Sender:  raw[KeySender],
		Content: raw[KeyContent],
	}
	if ts, ok := raw[KeyTimestamp]; ok {
		millis, err := strconv.ParseInt(ts, 10, 64)
		if err != nil {
			return domain.PushPayload{}, fmt.Errorf("%w: timestamp %q is not epoch millis",
				errors.ErrMalformedPushPayload, ts)
		}
		payload.Timestamp = time.UnixMilli(millis).UTC()
	}
	if id, ok := raw[KeyMessageID]; ok && id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return domain.PushPayload{}, fmt.Errorf("%w: message_id %q is not a UUID",
				errors.ErrMalformedPushPayload, id)
		}
		payload.MessageID = parsed
	}
	if err := validate.Struct(payload); err != nil {
		return domain.PushPayload{}, fmt.Errorf("%w: %v", errors.ErrMalformedPushPayload, err)
	}
	return payload, nil
}
