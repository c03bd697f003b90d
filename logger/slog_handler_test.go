package logger

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/jsonlog/core"
	"github.com/philipp01105/jsonlog/sink"
)

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()
	l, _ := newTestLogger(InfoLevel)
	sh := NewSlogHandler(l)
	ctx := context.Background()

	require.False(t, sh.Enabled(ctx, slog.LevelDebug))
	require.True(t, sh.Enabled(ctx, slog.LevelInfo))
	require.True(t, sh.Enabled(ctx, slog.LevelWarn))
	require.True(t, sh.Enabled(ctx, slog.LevelError))
}

func TestSlogHandler_LevelMapping(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelDebug - 4, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelInfo + 2, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 8, core.ErrorLevel},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, slogLevelToCore(tc.in), tc.in.String())
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()
	l, rec := newTestLogger(DebugLevel)
	logger := slog.New(NewSlogHandler(l))

	logger.Warn("disk at 90%", "key", "value", "count", 42)

	call, ok := rec.Last()
	require.True(t, ok)
	require.Equal(t, "warn", call.Method)

	m := call.Output.(map[string]any)
	require.Equal(t, "disk at 90%", m[core.KeyMsg])
	require.Equal(t, "value", m["key"])
	require.Equal(t, int64(42), m["count"])
	require.Equal(t, "WARNING", m[core.KeySeverity])
}

func TestSlogHandler_FiltersBelowLevel(t *testing.T) {
	t.Parallel()
	l, rec := newTestLogger(WarnLevel)
	sh := NewSlogHandler(l)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "ignored", 0)
	require.NoError(t, sh.Handle(context.Background(), r))
	require.Zero(t, rec.Len())
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	t.Parallel()
	l, rec := newTestLogger(InfoLevel)
	logger := slog.New(NewSlogHandler(l)).With("request_id", "req-123")

	logger.Info("test message")

	m := lastRecord(t, rec)
	require.Equal(t, "req-123", m["request_id"])
	require.Equal(t, "test message", m[core.KeyMsg])
}

func TestSlogHandler_WithGroup(t *testing.T) {
	t.Parallel()
	l, rec := newTestLogger(InfoLevel)
	logger := slog.New(NewSlogHandler(l)).
		With("app", "shop").
		WithGroup("http").
		With("method", "GET")

	logger.Info("request",
		slog.Int("status", 200),
		slog.Group("client", slog.String("ip", "10.0.0.1")),
		slog.Group("", slog.String("inline", "yes")),
	)

	m := lastRecord(t, rec)
	require.Equal(t, "shop", m["app"])
	require.Equal(t, "GET", m["http.method"])
	require.Equal(t, int64(200), m["http.status"])
	require.Equal(t, "10.0.0.1", m["http.client.ip"])
	require.Equal(t, "yes", m["http.inline"])
}

func TestSlogHandler_EmptyGroupIsNoop(t *testing.T) {
	t.Parallel()
	l, _ := newTestLogger(InfoLevel)
	sh := NewSlogHandler(l)

	require.Same(t, sh, sh.WithGroup(""))
}

func TestSlogHandler_WithAttrsDoesNotLeak(t *testing.T) {
	t.Parallel()
	l, rec := newTestLogger(InfoLevel)
	base := slog.New(NewSlogHandler(l)).With("a", 1)
	_ = base.With("b", 2)

	base.Info("only a")
	m := lastRecord(t, rec)
	require.Equal(t, int64(1), m["a"])
	require.NotContains(t, m, "b")
}

func TestSlogHandler_CallerFromRecord(t *testing.T) {
	t.Parallel()
	rec := sink.NewRecorder()
	l := NewBuilder().
		WithSink(rec).
		WithTransform(mapTransform).
		WithCaller(true).
		Build()

	slog.New(NewSlogHandler(l)).Info("located")

	caller := lastRecord(t, rec)[core.KeyCaller].(string)
	require.True(t, strings.HasPrefix(caller, "slog_handler_test.go:"), caller)
}
