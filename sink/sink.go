package sink

import (
	"fmt"

	"github.com/philipp01105/jsonlog/core"
)

// Sink receives transformed records. It exposes one write method per
// level except fatal; fatal records are written through Error.
type Sink interface {
	Trace(out any) error
	Debug(out any) error
	Info(out any) error
	Warn(out any) error
	Error(out any) error
}

// Method returns the name of the sink method a level dispatches to.
func Method(level core.Level) string {
	switch level {
	case core.TraceLevel:
		return "trace"
	case core.DebugLevel:
		return "debug"
	case core.InfoLevel:
		return "info"
	case core.WarnLevel:
		return "warn"
	case core.ErrorLevel, core.FatalLevel:
		return "error"
	default:
		return ""
	}
}

// Dispatch writes out to the sink method matching level.
func Dispatch(s Sink, level core.Level, out any) error {
	switch level {
	case core.TraceLevel:
		return s.Trace(out)
	case core.DebugLevel:
		return s.Debug(out)
	case core.InfoLevel:
		return s.Info(out)
	case core.WarnLevel:
		return s.Warn(out)
	case core.ErrorLevel, core.FatalLevel:
		return s.Error(out)
	default:
		return fmt.Errorf("%w: %d", core.ErrUnknownLevel, int8(level))
	}
}
