package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/mama165/sdk-go/database"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const KindIndex = "INDEX"

// Documents are schemaless records, the way a document database stores them.
// They are encoded as protobuf Struct values so that any tool holding the
// descriptor can read them back.

func encodeDocument(fields map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return proto.Marshal(s)
}

func decodeDocument(b []byte) (*structpb.Struct, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func stringField(doc *structpb.Struct, name string) string {
	v, ok := doc.GetFields()[name]
	if !ok {
		return ""
	}
	return v.GetStringValue()
}

func boolField(doc *structpb.Struct, name string) bool {
	v, ok := doc.GetFields()[name]
	if !ok {
		return false
	}
	return v.GetBoolValue()
}

func timeField(doc *structpb.Struct, name string) (time.Time, error) {
	raw := stringField(doc, name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("document field %q is missing", name)
	}
	return time.Parse(time.RFC3339Nano, raw)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// DocumentFields exposes a raw stored value as plain fields, for inspection tools.
func DocumentFields(b []byte) (map[string]any, error) {
	doc, err := decodeDocument(b)
	if err != nil {
		return nil, err
	}
	return doc.AsMap(), nil
}

// DocumentKind names the collection a key belongs to. Secondary index keys
// are reported as INDEX; their values are keys, not documents.
func DocumentKind(key string) string {
	switch {
	case strings.HasPrefix(key, messageIndexPrefix), strings.HasPrefix(key, notificationIndexPrefix),
		strings.HasPrefix(key, notificationPendingPrefix):
		return KindIndex
	case strings.HasPrefix(key, messagePrefix):
		return "FEED"
	case strings.HasPrefix(key, notificationPrefix):
		return "NOTIFICATION"
	case strings.HasPrefix(key, accountPrefix):
		return "ACCOUNT"
	case strings.HasPrefix(key, sessionPrefix):
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// DocumentMapper renders a stored document in the debug inspector.
func DocumentMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	row.Type = DocumentKind(key)
	if row.Type == KindIndex {
		row.Detail = string(val)
		return row
	}
	fields, err := DocumentFields(val)
	if err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	if content, ok := fields["content"].(string); ok {
		row.Detail = content
	} else {
		row.Detail = fmt.Sprint(fields)
	}
	return row
}
