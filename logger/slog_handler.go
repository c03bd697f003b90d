package logger

import (
	"context"
	"log/slog"

	"github.com/philipp01105/jsonlog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a Logger.
// This allows the logger to serve as the backend of log/slog.
//
// Attributes become a context object (group names prefix keys with
// "group.") and the slog message becomes msg, taken verbatim.
type SlogHandler struct {
	logger *Logger
	attrs  []slogField
	group  string
}

type slogField struct {
	key   string
	value any
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Logger.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToCore(level))
}

// Handle converts a slog.Record into a context object and message and
// emits it through the wrapped Logger.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if !s.logger.Enabled(level) {
		return nil
	}

	var fields []slogField
	fields = append(fields, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, s.group, a)
		return true
	})

	obj := make(core.Object, len(fields))
	for _, f := range fields {
		obj[f.key] = f.value
	}

	// The message is passed as a lone argument so it is never used as a
	// format string.
	return s.logger.emit(level, []any{obj, record.Message}, core.CallerFromPC(record.PC), 1)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slogField, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  joinKey(s.group, name),
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr flattens a into fields, prefixing keys with the group path.
func appendAttr(fields []slogField, group string, a slog.Attr) []slogField {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, prefix, ga)
		}
		return fields
	}

	return append(fields, slogField{key: joinKey(group, a.Key), value: a.Value.Any()})
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
