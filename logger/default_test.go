package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/jsonlog/core"
	"github.com/philipp01105/jsonlog/sink"
)

// useDefault swaps the default logger for the duration of the test.
func useDefault(t *testing.T, l *Logger) {
	t.Helper()
	prev := Default()
	SetDefault(l)
	t.Cleanup(func() { SetDefault(prev) })
}

func TestDefault_PackageFunctions(t *testing.T) {
	rec := sink.NewRecorder()
	useDefault(t, NewBuilder().
		WithName("pkg").
		WithSink(rec).
		WithLevel(TraceLevel).
		WithTransform(mapTransform).
		Build())

	require.NoError(t, Trace("t"))
	require.NoError(t, Debug("d"))
	require.NoError(t, Info("i"))
	require.NoError(t, Warn("w"))
	require.NoError(t, Error("e"))
	require.NoError(t, Fatal("f"))

	var methods []string
	for _, c := range rec.Calls() {
		methods = append(methods, c.Method)
	}
	require.Equal(t, []string{"trace", "debug", "info", "warn", "error", "error"}, methods)

	require.NoError(t, Child(String("req", "1")).Info("child"))
	m := lastRecord(t, rec)
	require.Equal(t, "1", m["req"])
	require.Equal(t, "pkg", m[core.KeyName])
}

func TestDefault_CallerPointsAtUser(t *testing.T) {
	rec := sink.NewRecorder()
	useDefault(t, NewBuilder().
		WithSink(rec).
		WithTransform(mapTransform).
		WithCaller(true).
		Build())

	require.NoError(t, Info("where"))
	caller := lastRecord(t, rec)[core.KeyCaller].(string)
	require.True(t, strings.HasPrefix(caller, "default_test.go:"), caller)
}

func TestDefault_InitialLogger(t *testing.T) {
	l := Default()
	require.NotNil(t, l)
	require.NotEmpty(t, l.Name())
	require.Equal(t, InfoLevel, l.Level())
}

func TestCreate(t *testing.T) {
	t.Parallel()
	l := Create(Options{Name: "created", MinLevel: DebugLevel})

	require.Equal(t, "created", l.Name())
	require.Equal(t, DebugLevel, l.Level())
	_, isConsole := l.sink.(*sink.Console)
	require.True(t, isConsole)
}
