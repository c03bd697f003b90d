// Package config loads logger settings from a YAML or JSON file with
// JSONLOG_ environment overrides and builds a Logger from them.
package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/jsonlog/core"
	"github.com/philipp01105/jsonlog/formatter"
	"github.com/philipp01105/jsonlog/logger"
	"github.com/philipp01105/jsonlog/sink"
)

// EnvPrefix marks environment variables that override file settings.
// A double underscore separates nested keys: JSONLOG_FIELDS__REGION.
const EnvPrefix = "JSONLOG_"

// Output destinations.
const (
	OutputConsole = "console"
	OutputStdout  = "stdout"
	OutputStderr  = "stderr"
)

// ErrUnknownOutput is returned by Validate for unsupported outputs.
var ErrUnknownOutput = errors.New("unknown output")

// Config describes a Logger.
type Config struct {
	// Name is written into every record.
	Name string `json:"name"`
	// Level is the minimum level name (default: info).
	Level string `json:"level"`
	// Format selects the encoder: json, text or yaml (default: json).
	Format string `json:"format"`
	// TimestampFormat is a Go time layout (default: ISO-8601 millis).
	TimestampFormat string `json:"timestamp_format"`
	// Output is console, stdout or stderr (default: console).
	Output string `json:"output"`
	// Caller adds the call site to records.
	Caller bool `json:"caller"`
	// CoarseClock stamps records from a cached clock.
	CoarseClock bool `json:"coarse_clock"`
	// Fields are added to every record.
	Fields map[string]string `json:"fields"`
	// Metrics counts sink writes with Prometheus.
	Metrics bool `json:"metrics"`
}

// Load reads path, applies environment overrides, defaults and validation.
// An empty path loads the environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// SetDefaults fills unset options.
func (c *Config) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
	if c.Output == "" {
		c.Output = OutputConsole
	}
}

// Validate checks level, format and output names.
func (c Config) Validate() error {
	if _, err := core.ParseLevel(c.Level); err != nil {
		return err
	}
	if _, err := formatter.New(c.Format, formatter.Config{}); err != nil {
		return err
	}
	switch c.Output {
	case OutputConsole, OutputStdout, OutputStderr:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, c.Output)
	}
}

// NewSink returns the console sink selected by Output. console splits
// records between stdout and stderr by level; stdout and stderr send
// everything to one writer.
func (c Config) NewSink(stdout, stderr io.Writer) (*sink.Console, error) {
	switch c.Output {
	case OutputConsole, "":
		return sink.NewConsole(sink.ConsoleConfig{Out: stdout, Err: stderr}), nil
	case OutputStdout:
		return sink.NewConsole(sink.ConsoleConfig{Out: stdout, Err: stdout}), nil
	case OutputStderr:
		return sink.NewConsole(sink.ConsoleConfig{Out: stderr, Err: stderr}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, c.Output)
	}
}

// NewLogger builds a Logger writing to s. With Metrics set and a non-nil
// reg the sink is wrapped in sink.Instrumented registered on reg.
func (c Config) NewLogger(s sink.Sink, reg prometheus.Registerer) (*logger.Logger, error) {
	level, err := core.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	f, err := formatter.New(c.Format, formatter.Config{TimestampFormat: c.TimestampFormat})
	if err != nil {
		return nil, err
	}

	if c.Metrics && reg != nil {
		instrumented, err := sink.NewInstrumented(s, reg)
		if err != nil {
			return nil, fmt.Errorf("register sink metrics: %w", err)
		}
		s = instrumented
	}

	return logger.NewBuilder().
		WithName(c.Name).
		WithSink(s).
		WithLevel(level).
		WithFields(c.fields()...).
		WithFormatter(f).
		WithCaller(c.Caller).
		WithCoarseClock(c.CoarseClock).
		Build(), nil
}

// fields returns Fields in key order.
func (c Config) fields() []core.Field {
	keys := make([]string, 0, len(c.Fields))
	for k := range c.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]core.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, logger.String(k, c.Fields[k]))
	}
	return fields
}
