package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	record := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	return record
}

func TestStackTraceHandler(t *testing.T) {
	t.Run("adds_request_id_and_context_attrs", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := WithRequestID(context.Background(), "req-1")
		ctx = WithAttrs(ctx, slog.String("origin", "DUB"))
		ctx = WithAttrs(ctx, slog.String("destination", "STN"))

		log.InfoContext(ctx, "search started")

		record := decodeRecord(t, &buf)
		assert.Equal(t, "search started", record["msg"])
		assert.Equal(t, "req-1", record["request_id"])
		assert.Equal(t, "DUB", record["origin"])
		assert.Equal(t, "STN", record["destination"])
		assert.NotContains(t, record, "stack_trace")
	})

	t.Run("adds_stack_trace_on_error", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewStructuredLogger(&buf, slog.LevelInfo)

		log.ErrorContext(context.Background(), "fetch failed")

		record := decodeRecord(t, &buf)
		assert.Contains(t, record, "stack_trace")
	})

	t.Run("respects_level", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewStructuredLogger(&buf, slog.LevelWarn)

		log.InfoContext(context.Background(), "dropped")

		assert.Zero(t, buf.Len())
	})

	t.Run("keeps_wrapping_after_with", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewStructuredLogger(&buf, slog.LevelInfo).With(slog.String("component", "search"))

		log.InfoContext(WithRequestID(context.Background(), "req-2"), "done")

		record := decodeRecord(t, &buf)
		assert.Equal(t, "search", record["component"])
		assert.Equal(t, "req-2", record["request_id"])
	})
}
