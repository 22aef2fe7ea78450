package feed

import (
	"fmt"
	"group-talk/domain"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/structpb"
)

// Wire form of feed documents. Times travel as RFC3339Nano strings, the same
// form the document store keeps them in.

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func messageToValue(m domain.Message) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		"id":        structpb.NewStringValue(m.ID.String()),
		"room":      structpb.NewStringValue(string(m.Room)),
		"sender":    structpb.NewStringValue(m.Sender),
		"content":   structpb.NewStringValue(m.Content),
		"timestamp": structpb.NewStringValue(formatTime(m.Timestamp)),
	}})
}

func messageFromStruct(s *structpb.Struct) (domain.Message, error) {
	fields := s.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return domain.Message{}, fmt.Errorf("message id: %w", err)
	}
	at, err := time.Parse(time.RFC3339Nano, fields["timestamp"].GetStringValue())
	if err != nil {
		return domain.Message{}, fmt.Errorf("message timestamp: %w", err)
	}
	return domain.Message{
		ID:        id,
		Room:      domain.RoomID(fields["room"].GetStringValue()),
		Sender:    fields["sender"].GetStringValue(),
		Content:   fields["content"].GetStringValue(),
		Timestamp: at,
	}, nil
}

func messagesToValue(messages []domain.Message) *structpb.Value {
	return structpb.NewListValue(&structpb.ListValue{Values: lo.Map(messages, func(m domain.Message, _ int) *structpb.Value {
		return messageToValue(m)
	})})
}

func messagesFromValue(v *structpb.Value) ([]domain.Message, error) {
	values := v.GetListValue().GetValues()
	messages := make([]domain.Message, 0, len(values))
	for _, value := range values {
		m, err := messageFromStruct(value.GetStructValue())
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func changeSetToStruct(cs domain.ChangeSet) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"room":     structpb.NewStringValue(string(cs.Room)),
		"initial":  structpb.NewBoolValue(cs.Initial),
		"added":    messagesToValue(cs.Added),
		"modified": messagesToValue(cs.Modified),
		"removed": structpb.NewListValue(&structpb.ListValue{Values: lo.Map(cs.Removed, func(id uuid.UUID, _ int) *structpb.Value {
			return structpb.NewStringValue(id.String())
		})}),
	}}
}

func changeSetFromStruct(s *structpb.Struct) (domain.ChangeSet, error) {
	fields := s.GetFields()
	cs := domain.ChangeSet{
		Room:    domain.RoomID(fields["room"].GetStringValue()),
		Initial: fields["initial"].GetBoolValue(),
	}
	var err error
	if cs.Added, err = messagesFromValue(fields["added"]); err != nil {
		return domain.ChangeSet{}, err
	}
	if cs.Modified, err = messagesFromValue(fields["modified"]); err != nil {
		return domain.ChangeSet{}, err
	}
	for _, value := range fields["removed"].GetListValue().GetValues() {
		id, err := uuid.Parse(value.GetStringValue())
		if err != nil {
			return domain.ChangeSet{}, fmt.Errorf("removed id: %w", err)
		}
		cs.Removed = append(cs.Removed, id)
	}
	return cs, nil
}

func notificationToStruct(n domain.PendingNotification) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":         structpb.NewStringValue(n.ID.String()),
		"message_id": structpb.NewStringValue(n.MessageID.String()),
		"room":       structpb.NewStringValue(string(n.Room)),
		"sender":     structpb.NewStringValue(n.Sender),
		"content":    structpb.NewStringValue(n.Content),
		"timestamp":  structpb.NewStringValue(formatTime(n.Timestamp)),
	}}
}

// notificationFromStruct accepts a missing record ID; the store assigns one.
func notificationFromStruct(s *structpb.Struct) (domain.PendingNotification, error) {
	fields := s.GetFields()
	var id uuid.UUID
	if raw := fields["id"].GetStringValue(); raw != "" && raw != uuid.Nil.String() {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return domain.PendingNotification{}, fmt.Errorf("notification id: %w", err)
		}
		id = parsed
	}
	messageID, err := uuid.Parse(fields["message_id"].GetStringValue())
	if err != nil {
		return domain.PendingNotification{}, fmt.Errorf("notification message id: %w", err)
	}
	at, err := time.Parse(time.RFC3339Nano, fields["timestamp"].GetStringValue())
	if err != nil {
		return domain.PendingNotification{}, fmt.Errorf("notification timestamp: %w", err)
	}
	return domain.PendingNotification{
		ID:        id,
		MessageID: messageID,
		Room:      domain.RoomID(fields["room"].GetStringValue()),
		Sender:    fields["sender"].GetStringValue(),
		Content:   fields["content"].GetStringValue(),
		Timestamp: at,
	}, nil
}
