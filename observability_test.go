package hashgo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(raw) == 0 {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		lines = append(lines, m)
	}
	return lines
}

func TestLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("hash levels", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		l.LogHash(ctx, "djb2", true, false, nil)
		l.LogHash(ctx, "SHA-256", false, false, errors.New("boom"))

		lines := decodeLogLines(t, &buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "DEBUG", lines[0]["level"])
		assert.Equal(t, "hash completed", lines[0]["msg"])
		assert.Equal(t, true, lines[0]["sync"])
		assert.Equal(t, "ERROR", lines[1]["level"])
		assert.Equal(t, "boom", lines[1]["error"])
	})

	t.Run("fallback", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, nil))

		l.LogFallback(ctx, "md5", "djb2")

		lines := decodeLogLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "WARN", lines[0]["level"])
		assert.Equal(t, `Invalid algorithm "md5" not found. Falling back to "djb2".`, lines[0]["msg"])
		assert.Equal(t, "md5", lines[0]["requested"])
	})

	t.Run("hook failure", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, nil))

		l.LogHookFailure(ctx, "before:hash", 1, errors.New("nope"), false)
		l.LogHookFailure(ctx, "after:hash", 0, errors.New("nope"), true)

		lines := decodeLogLines(t, &buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "WARN", lines[0]["level"])
		assert.Equal(t, float64(1), lines[0]["index"])
		assert.Equal(t, "ERROR", lines[1]["level"])
		assert.Equal(t, "after:hash", lines[1]["event"])
	})

	t.Run("with algorithm", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, nil)).WithAlgorithm("crc32")

		l.Info("hello")

		lines := decodeLogLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "crc32", lines[0]["algorithm"])
	})

	t.Run("noop", func(t *testing.T) {
		l := NoopLogger()
		assert.False(t, l.Enabled(ctx, slog.LevelError))
	})

	t.Run("nil handler", func(t *testing.T) {
		l := NewLogger(nil)
		assert.True(t, l.Enabled(ctx, slog.LevelInfo))
		assert.False(t, l.Enabled(ctx, slog.LevelDebug))
	})
}

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	assert.Equal(t, BasicMetricsStats{}, m.GetStats())

	m.RecordHash("djb2", true, false, 2*time.Microsecond, nil)
	m.RecordHash("djb2", true, true, 4*time.Microsecond, nil)
	m.RecordHash("SHA-256", false, false, 6*time.Microsecond, errors.New("boom"))
	m.RecordFallback("md5", "djb2")
	m.RecordHookFailure("before:hash", false)
	m.RecordHookFailure("after:hash", true)

	assert.Equal(t, BasicMetricsStats{
		HashCount:      3,
		HashErrors:     1,
		HashAvgNanos:   4000,
		SyncHashCount:  2,
		CacheHits:      1,
		Fallbacks:      1,
		HookFailures:   2,
		HookPropagated: 1,
	}, m.GetStats())
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}

	assert.NotPanics(t, func() {
		mc.RecordHash("djb2", true, false, time.Millisecond, nil)
		mc.RecordFallback("a", "b")
		mc.RecordHookFailure("before:hash", true)
	})
}
