package formatter

import (
	"fmt"
	"time"

	"github.com/philipp01105/jsonlog/core"
)

// TextFormatter formats records as human-readable text:
//
//	2026-01-15T12:00:00.000Z [INFO] api: message key=value
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg.withDefaults()}
}

// headerKeys are rendered in the line prefix rather than as key=value pairs.
var headerKeys = map[string]bool{
	core.KeyTime:     true,
	core.KeySeverity: true,
	core.KeyLevel:    true,
	core.KeyName:     true,
	core.KeyMsg:      true,
	core.KeyCaller:   true,
	core.KeyHostname: true,
	core.KeyPID:      true,
}

// severityBrackets pre-formats " [SEVERITY] " for every level
var severityBrackets = func() map[string]string {
	m := make(map[string]string, len(core.Levels()))
	for _, l := range core.Levels() {
		m[l.Severity()] = " [" + l.Severity() + "] "
	}
	return m
}()

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := bufferPool.Get()
	defer buf.Free()

	if t, ok := rec.Get(core.KeyTime); ok {
		if ts, ok := t.(time.Time); ok {
			buf.AppendTime(ts, f.TimestampFormat)
		} else {
			buf.AppendString(textValue(t, f.TimestampFormat))
		}
	}

	sev, _ := rec.Get(core.KeySeverity)
	if s, ok := sev.(string); ok && severityBrackets[s] != "" {
		buf.AppendString(severityBrackets[s])
	} else {
		buf.AppendString(" [UNKNOWN] ")
	}

	if caller, ok := rec.Get(core.KeyCaller); ok {
		buf.AppendByte('[')
		buf.AppendString(textValue(caller, f.TimestampFormat))
		buf.AppendString("] ")
	}

	if name, ok := rec.Get(core.KeyName); ok && name != "" {
		buf.AppendString(textValue(name, f.TimestampFormat))
		buf.AppendString(": ")
	}

	msg, _ := rec.Get(core.KeyMsg)
	buf.AppendString(textValue(msg, f.TimestampFormat))

	rec.Range(func(key string, v any) bool {
		if headerKeys[key] {
			return true
		}
		buf.AppendByte(' ')
		buf.AppendString(key)
		buf.AppendByte('=')
		buf.AppendString(textValue(v, f.TimestampFormat))
		return true
	})

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

func textValue(v any, layout string) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format(layout)
	case error:
		return core.ErrorText(x)
	default:
		return fmt.Sprint(x)
	}
}
