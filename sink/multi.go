package sink

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/jsonlog/core"
)

// Multi sends every record to several sinks
type Multi struct {
	sinks []Sink
}

// NewMulti creates a new fan-out sink
func NewMulti(sinks ...Sink) *Multi {
	s := make([]Sink, len(sinks))
	copy(s, sinks)
	return &Multi{sinks: s}
}

func (m *Multi) write(level core.Level, out any) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, Dispatch(s, level, out))
	}
	return err
}

// Trace fans out a trace record
func (m *Multi) Trace(out any) error { return m.write(core.TraceLevel, out) }

// Debug fans out a debug record
func (m *Multi) Debug(out any) error { return m.write(core.DebugLevel, out) }

// Info fans out an info record
func (m *Multi) Info(out any) error { return m.write(core.InfoLevel, out) }

// Warn fans out a warn record
func (m *Multi) Warn(out any) error { return m.write(core.WarnLevel, out) }

// Error fans out an error record
func (m *Multi) Error(out any) error { return m.write(core.ErrorLevel, out) }
