package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDocumentMapper(t *testing.T) {
	t.Run("should show the content of a message", func(t *testing.T) {
		req := require.New(t)
		val, err := encodeDocument(map[string]any{"content": "hi", "sender": "alice"})
		req.NoError(err)

		row := DocumentMapper(messagePrefix+"group:"+time.Now().Format(time.RFC3339Nano)+":"+uuid.NewString(), val)

		req.Equal("hi", row.Detail)
	})

	t.Run("should show the raw value of an index entry", func(t *testing.T) {
		req := require.New(t)
		row := DocumentMapper(notificationPendingPrefix+"x", []byte("ref"))
		req.Equal(KindIndex, row.Type)
		req.Equal("ref", row.Detail)
	})
}
