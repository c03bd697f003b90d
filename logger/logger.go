package logger

import (
	"fmt"
	"os"
	"sort"

	"github.com/philipp01105/jsonlog/core"
	"github.com/philipp01105/jsonlog/formatter"
	"github.com/philipp01105/jsonlog/sink"
)

// Frames between core.Caller's caller and the user's call site:
// Logger.log -> Logger.<Level> -> user.
const callerSkip = 2

var (
	hostname, _ = os.Hostname()
	pid         = os.Getpid()
)

// Config holds everything a Logger is built from. Zero values take the
// documented defaults.
type Config struct {
	// Name is written into every record
	Name string
	// Sink receives the transformed records (default: console sink)
	Sink sink.Sink
	// MinLevel is the lowest level emitted (default: InfoLevel)
	MinLevel core.Level
	// Fields are merged into every record; later duplicates win
	Fields []core.Field
	// Serializers rewrite same-named fields of a context-object argument
	Serializers map[string]core.Serializer
	// Transform encodes the record for the sink (default: JSON text)
	Transform core.Transform
	// IncludeCaller adds the call site as "caller"
	IncludeCaller bool
	// CoarseClock stamps records from a cached clock instead of time.Now
	CoarseClock bool
}

// Logger is a leveled structured logger (immutable)
type Logger struct {
	name          string
	sink          sink.Sink
	level         core.Level
	minRank       int
	fields        []core.Field
	serializers   map[string]core.Serializer
	transform     core.Transform
	clock         core.Clock
	includeCaller bool
}

// New creates a Logger from cfg.
func New(cfg Config) *Logger {
	if cfg.Sink == nil {
		cfg.Sink = sink.NewConsole(sink.ConsoleConfig{})
	}
	if cfg.Transform == nil {
		cfg.Transform = formatter.DefaultTransform()
	}
	if !cfg.MinLevel.Valid() {
		cfg.MinLevel = InfoLevel
	}

	serializers := make(map[string]core.Serializer, len(cfg.Serializers))
	for k, s := range cfg.Serializers {
		serializers[k] = s
	}

	clock := core.Clock(core.SystemClock)
	if cfg.CoarseClock {
		clock = core.CoarseClock()
	}

	return &Logger{
		name:          cfg.Name,
		sink:          cfg.Sink,
		level:         cfg.MinLevel,
		minRank:       cfg.MinLevel.Rank(),
		fields:        core.MergeFields(nil, cfg.Fields...),
		serializers:   serializers,
		transform:     cfg.Transform,
		clock:         clock,
		includeCaller: cfg.IncludeCaller,
	}
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	cfg Config
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{cfg: Config{MinLevel: InfoLevel}}
}

// WithName sets the logger name
func (b *Builder) WithName(name string) *Builder {
	b.cfg.Name = name
	return b
}

// WithSink sets the sink
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.cfg.Sink = s
	return b
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.cfg.MinLevel = level
	return b
}

// WithFields adds context fields to all records
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.cfg.Fields = append(b.cfg.Fields, fields...)
	return b
}

// WithSerializer registers a serializer for a context-object field
func (b *Builder) WithSerializer(key string, s core.Serializer) *Builder {
	if b.cfg.Serializers == nil {
		b.cfg.Serializers = make(map[string]core.Serializer)
	}
	b.cfg.Serializers[key] = s
	return b
}

// WithTransform sets the record transform
func (b *Builder) WithTransform(t core.Transform) *Builder {
	b.cfg.Transform = t
	return b
}

// WithFormatter sets the transform to the given formatter's output
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.cfg.Transform = formatter.Transform(f)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.cfg.IncludeCaller = enabled
	return b
}

// WithCoarseClock enables the cached coarse clock
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.cfg.CoarseClock = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return New(b.cfg)
}

// Child creates a new Logger whose context fields are this logger's
// fields overlaid with fields. Everything else is shared; l is unchanged.
func (l *Logger) Child(fields ...core.Field) *Logger {
	child := *l
	child.fields = core.MergeFields(l.fields, fields...)
	return &child
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the minimum level
func (l *Logger) Level() core.Level {
	return l.level
}

// Enabled reports whether records at level are emitted
func (l *Logger) Enabled(level core.Level) bool {
	return level.Valid() && level.Rank() >= l.minRank
}

// Log logs args at the specified level
func (l *Logger) Log(level core.Level, args ...any) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", core.ErrUnknownLevel, int8(level))
	}
	return l.log(level, 0, args)
}

// Trace logs at trace level
func (l *Logger) Trace(args ...any) error {
	return l.log(core.TraceLevel, 0, args)
}

// Debug logs at debug level
func (l *Logger) Debug(args ...any) error {
	return l.log(core.DebugLevel, 0, args)
}

// Info logs at info level
func (l *Logger) Info(args ...any) error {
	return l.log(core.InfoLevel, 0, args)
}

// Warn logs at warn level
func (l *Logger) Warn(args ...any) error {
	return l.log(core.WarnLevel, 0, args)
}

// Error logs at error level
func (l *Logger) Error(args ...any) error {
	return l.log(core.ErrorLevel, 0, args)
}

// Fatal logs at fatal level through the sink's Error method. It does not
// exit the process.
func (l *Logger) Fatal(args ...any) error {
	return l.log(core.FatalLevel, 0, args)
}

// log filters by level, resolves the call site and emits. skip counts
// extra frames between the user's call site and the exported method.
func (l *Logger) log(level core.Level, skip int, args []any) error {
	// Level check before any allocation
	if level.Rank() < l.minRank {
		return nil
	}

	var caller core.CallerInfo
	if l.includeCaller {
		caller = core.Caller(callerSkip + skip)
	}
	return l.emit(level, args, caller, callerSkip+skip+1)
}

// emit assembles, transforms and dispatches one record. stackSkip is the
// number of frames above emit to leave out of captured error stacks.
func (l *Logger) emit(level core.Level, args []any, caller core.CallerInfo, stackSkip int) error {
	desc := level.Descriptor()
	cleaned, failure := core.ExtractErrors(args)

	rec := core.NewRecord(len(l.fields) + 10)
	for _, f := range l.fields {
		rec.Set(f.Key, f.Value.Resolve())
	}

	if failure != nil {
		rec.Set(core.KeyErr, core.NewErrorInfo(failure, stackSkip))
	}

	msgArgs := cleaned
	if len(cleaned) > 0 {
		if arg := core.Classify(cleaned[0]); arg.Kind == core.ContextArg {
			l.mergeObject(rec, arg.Context)
			msgArgs = cleaned[1:]
		}
	}
	rec.Set(core.KeyMsg, core.FormatMessage(msgArgs))

	rec.Set(core.KeyName, l.name)
	rec.Set(core.KeyHostname, hostname)
	rec.Set(core.KeyPID, pid)
	rec.Set(core.KeyLevel, desc.Rank)
	rec.Set(core.KeySeverity, desc.Severity)
	rec.Set(core.KeyTime, l.clock().UTC())
	if l.includeCaller && caller.Defined {
		rec.Set(core.KeyCaller, caller.String())
	}

	out, err := l.transform(rec)
	if err != nil {
		return err
	}
	return sink.Dispatch(l.sink, level, out)
}

// mergeObject copies a context object into rec in sorted key order,
// passing each field through its registered serializer.
func (l *Logger) mergeObject(rec *core.Record, obj core.Object) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := obj[k]
		if s, ok := l.serializers[k]; ok {
			v = s(v)
		}
		rec.Set(k, v)
	}
}
