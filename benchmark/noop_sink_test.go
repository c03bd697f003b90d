package benchmark

import (
	"testing"

	"github.com/philipp01105/jsonlog/logger"
	"github.com/philipp01105/jsonlog/sink"
)

var _ sink.Sink = noopSink{}

func TestNoopSinkAcceptsEveryLevel(t *testing.T) {
	l := logger.NewBuilder().WithSink(noopSink{}).WithLevel(logger.TraceLevel).Build()
	for _, fn := range []func(...any) error{l.Trace, l.Debug, l.Info, l.Warn, l.Error, l.Fatal} {
		if err := fn("x"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}
