package logger

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/philipp01105/jsonlog/core"
)

// Options configures Create. Sink and context fields are not exposed: the
// console sink is used, and fields are added through Child.
type Options struct {
	Name        string
	MinLevel    Level
	Serializers map[string]core.Serializer
	Transform   core.Transform
}

// Create returns a ready Logger writing to the console.
func Create(opts Options) *Logger {
	return New(Config{
		Name:        opts.Name,
		MinLevel:    opts.MinLevel,
		Serializers: opts.Serializers,
		Transform:   opts.Transform,
	})
}

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = Create(Options{Name: filepath.Base(os.Args[0])})
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger. They call
// log directly so the caller frame matches the Logger methods.

// Trace logs at trace level using the default logger
func Trace(args ...any) error {
	return Default().log(core.TraceLevel, 0, args)
}

// Debug logs at debug level using the default logger
func Debug(args ...any) error {
	return Default().log(core.DebugLevel, 0, args)
}

// Info logs at info level using the default logger
func Info(args ...any) error {
	return Default().log(core.InfoLevel, 0, args)
}

// Warn logs at warn level using the default logger
func Warn(args ...any) error {
	return Default().log(core.WarnLevel, 0, args)
}

// Error logs at error level using the default logger
func Error(args ...any) error {
	return Default().log(core.ErrorLevel, 0, args)
}

// Fatal logs at fatal level using the default logger. It does not exit.
func Fatal(args ...any) error {
	return Default().log(core.FatalLevel, 0, args)
}

// Child creates a child of the default logger
func Child(fields ...core.Field) *Logger {
	return Default().Child(fields...)
}
