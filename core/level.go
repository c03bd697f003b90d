package core

import (
	"errors"
	"fmt"
	"strings"
)

// Level represents the severity level of a log record.
//
// The zero value is InfoLevel, so a zero-valued configuration logs at info
// and above.
type Level int8

const (
	// TraceLevel for very fine-grained diagnostics
	TraceLevel Level = iota - 2
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages. Fatal records go to the sink's error channel.
	FatalLevel
)

// ErrUnknownLevel is returned by ParseLevel for names outside the level set.
var ErrUnknownLevel = errors.New("unknown log level")

// Descriptor is the fixed rank and severity label of a level.
type Descriptor struct {
	Rank     int
	Severity string
}

// descriptors is indexed by Level-TraceLevel. The severity labels are not
// derived from the level names: warn is WARNING.
var descriptors = [...]Descriptor{
	TraceLevel - TraceLevel: {Rank: 10, Severity: "TRACE"},
	DebugLevel - TraceLevel: {Rank: 20, Severity: "DEBUG"},
	InfoLevel - TraceLevel:  {Rank: 30, Severity: "INFO"},
	WarnLevel - TraceLevel:  {Rank: 40, Severity: "WARNING"},
	ErrorLevel - TraceLevel: {Rank: 50, Severity: "ERROR"},
	FatalLevel - TraceLevel: {Rank: 60, Severity: "FATAL"},
}

var names = [...]string{
	TraceLevel - TraceLevel: "trace",
	DebugLevel - TraceLevel: "debug",
	InfoLevel - TraceLevel:  "info",
	WarnLevel - TraceLevel:  "warn",
	ErrorLevel - TraceLevel: "error",
	FatalLevel - TraceLevel: "fatal",
}

// Levels returns every level in ascending rank order.
func Levels() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}
}

// Valid reports whether l is one of the six defined levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

// Descriptor returns the rank and severity of the level. Invalid levels
// yield the zero Descriptor.
func (l Level) Descriptor() Descriptor {
	if !l.Valid() {
		return Descriptor{}
	}
	return descriptors[l-TraceLevel]
}

// Rank returns the numeric rank used for threshold filtering.
func (l Level) Rank() int {
	return l.Descriptor().Rank
}

// Severity returns the uppercase label written into records.
func (l Level) Severity() string {
	return l.Descriptor().Severity
}

// String returns the lowercase level name
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("level(%d)", int8(l))
	}
	return names[l-TraceLevel]
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so levels can be
// decoded straight from configuration files.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and "warning" is accepted as an alias of warn.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
