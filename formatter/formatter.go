package formatter

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/buffer"

	"github.com/philipp01105/jsonlog/core"
)

// ISO8601 is the default timestamp layout: UTC with millisecond precision.
const ISO8601 = "2006-01-02T15:04:05.000Z07:00"

// ErrUnknownFormat is returned by New for unsupported format names.
var ErrUnknownFormat = errors.New("unknown log format")

// Formatter defines the interface for record encoders
type Formatter interface {
	// Format encodes a record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for ISO8601)
	TimestampFormat string
}

func (c Config) withDefaults() Config {
	if c.TimestampFormat == "" {
		c.TimestampFormat = ISO8601
	}
	return c
}

// bufferPool hands out zap buffers for formatters that assemble output
// byte by byte.
var bufferPool = buffer.NewPool()

// Transform adapts a Formatter into a logger transform whose output is the
// encoded record as a string.
func Transform(f Formatter) core.Transform {
	return func(rec *core.Record) (any, error) {
		b, err := f.Format(rec)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	}
}

// DefaultTransform encodes records as single-line JSON text.
func DefaultTransform() core.Transform {
	return Transform(NewJSONFormatter(Config{}))
}

// New returns the formatter registered under name: json, text or yaml.
func New(name string, cfg Config) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return NewJSONFormatter(cfg), nil
	case "text":
		return NewTextFormatter(cfg), nil
	case "yaml":
		return NewYAMLFormatter(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}
