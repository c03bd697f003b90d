package sink

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"go.uber.org/multierr"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Console writes each record as one line. Trace, debug and info go to Out;
// warn and error go to Err.
type Console struct {
	out zapcore.WriteSyncer
	err zapcore.WriteSyncer
}

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Out receives trace, debug and info records (default: os.Stdout)
	Out io.Writer
	// Err receives warn, error and fatal records (default: os.Stderr)
	Err io.Writer
}

var linePool = buffer.NewPool()

// NewConsole creates a console sink. Each writer is serialized with its
// own lock; passing the same comparable writer for Out and Err shares one
// lock.
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}

	out := zapcore.Lock(zapcore.AddSync(cfg.Out))
	errWS := out
	if !sameWriter(cfg.Out, cfg.Err) {
		errWS = zapcore.Lock(zapcore.AddSync(cfg.Err))
	}
	return &Console{out: out, err: errWS}
}

// sameWriter reports whether a and b are the same writer. Writers of a
// dynamic type that cannot be compared are treated as distinct.
func sameWriter(a, b io.Writer) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Trace writes a trace record to Out
func (c *Console) Trace(out any) error { return writeLine(c.out, out) }

// Debug writes a debug record to Out
func (c *Console) Debug(out any) error { return writeLine(c.out, out) }

// Info writes an info record to Out
func (c *Console) Info(out any) error { return writeLine(c.out, out) }

// Warn writes a warn record to Err
func (c *Console) Warn(out any) error { return writeLine(c.err, out) }

// Error writes an error or fatal record to Err
func (c *Console) Error(out any) error { return writeLine(c.err, out) }

// Sync flushes both writers.
func (c *Console) Sync() error {
	if c.out == c.err {
		return c.out.Sync()
	}
	return multierr.Append(c.out.Sync(), c.err.Sync())
}

// writeLine writes out followed by a newline unless it already ends in one.
func writeLine(ws zapcore.WriteSyncer, out any) error {
	buf := linePool.Get()
	defer buf.Free()

	switch v := out.(type) {
	case string:
		buf.AppendString(v)
	case []byte:
		_, _ = buf.Write(v)
	default:
		fmt.Fprint(buf, v)
	}

	if b := buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		buf.AppendByte('\n')
	}

	_, err := ws.Write(buf.Bytes())
	return err
}
