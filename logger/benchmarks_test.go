package logger

import (
	"io"
	"testing"

	"github.com/philipp01105/jsonlog/formatter"
	"github.com/philipp01105/jsonlog/sink"
)

func newBenchLogger(level Level) *Logger {
	return NewBuilder().
		WithName("bench").
		WithSink(sink.NewConsole(sink.ConsoleConfig{Out: io.Discard, Err: io.Discard})).
		WithLevel(level).
		Build()
}

// BenchmarkInfoNoFields benchmarks Info() with a lone message.
func BenchmarkInfoNoFields(b *testing.B) {
	l := newBenchLogger(InfoLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Info("test message")
	}
}

// BenchmarkInfoWithContext benchmarks Info() with two child fields and a
// context object.
func BenchmarkInfoWithContext(b *testing.B) {
	l := newBenchLogger(InfoLevel).Child(String("key1", "value1"), String("key2", "value2"))
	obj := Object{"user": "alice", "attempt": 3}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Info(obj, "login %s", "ok")
	}
}

// BenchmarkFilteredDebug benchmarks Debug() when level is Info.
func BenchmarkFilteredDebug(b *testing.B) {
	l := newBenchLogger(InfoLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Debug("filtered message")
	}
}

// BenchmarkTextFormatter benchmarks the text transform.
func BenchmarkTextFormatter(b *testing.B) {
	l := NewBuilder().
		WithSink(sink.NewConsole(sink.ConsoleConfig{Out: io.Discard, Err: io.Discard})).
		WithFormatter(formatter.NewTextFormatter(formatter.Config{})).
		Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Info("test message")
	}
}

// BenchmarkParallel benchmarks concurrent logging through one logger.
func BenchmarkParallel(b *testing.B) {
	l := newBenchLogger(InfoLevel)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = l.Info("parallel message")
		}
	})
}
