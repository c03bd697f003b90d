package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/philipp01105/jsonlog/config"
	"github.com/philipp01105/jsonlog/core"
	"github.com/philipp01105/jsonlog/logger"
)

// options holds the values of the command line flags.
type options struct {
	configPath string
	name       string
	level      string
	format     string
	output     string
	caller     bool
	fields     map[string]string
	context    string
	requestID  bool
}

// rootCmd represents the base command.
var rootCmd = newRootCmd()

// Execute runs the jlog CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "jlog <level> [format] [args...]",
		Short: "Write a structured log record",
		Long: `Write a single structured log record at the given level.

The first argument after the level is used as a format string for the rest.
Arguments that look like numbers or booleans are passed as such, so
"jlog warn 'Number %d' 42" logs msg "Number 42".`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML or JSON configuration file")
	f.StringVarP(&opts.name, "name", "n", "", "logger name")
	f.StringVarP(&opts.level, "level", "l", "", "minimum level to emit")
	f.StringVarP(&opts.format, "format", "f", "", "output format: json, text or yaml")
	f.StringVarP(&opts.output, "output", "o", "", "output: console, stdout or stderr")
	f.BoolVar(&opts.caller, "caller", false, "include the call site")
	f.StringToStringVar(&opts.fields, "field", nil, "context field key=value (repeatable)")
	f.StringVar(&opts.context, "context", "", "JSON object merged into the record")
	f.BoolVar(&opts.requestID, "request-id", false, "add a generated request_id field")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	level, err := core.ParseLevel(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}

	s, err := cfg.NewSink(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	l, err := cfg.NewLogger(s, nil)
	if err != nil {
		return err
	}
	if opts.requestID {
		l = l.Child(logger.Lazy("request_id", func() any { return uuid.NewString() }))
	}

	logArgs, err := buildArgs(opts.context, args[1:])
	if err != nil {
		return err
	}
	return l.Log(level, logArgs...)
}

// applyFlags overrides configuration values with flags given explicitly.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("name") {
		cfg.Name = opts.name
	}
	if f.Changed("level") {
		cfg.Level = opts.level
	}
	if f.Changed("format") {
		cfg.Format = opts.format
	}
	if f.Changed("output") {
		cfg.Output = opts.output
	}
	if f.Changed("caller") {
		cfg.Caller = opts.caller
	}
	if len(opts.fields) > 0 {
		if cfg.Fields == nil {
			cfg.Fields = make(map[string]string, len(opts.fields))
		}
		for k, v := range opts.fields {
			cfg.Fields[k] = v
		}
	}
	return cfg.Validate()
}

// buildArgs turns the positional arguments into log call arguments, led by
// the decoded context object when one is given.
func buildArgs(contextJSON string, args []string) ([]any, error) {
	out := make([]any, 0, len(args)+1)

	if contextJSON != "" {
		var obj logger.Object
		if err := json.Unmarshal([]byte(contextJSON), &obj); err != nil {
			return nil, fmt.Errorf("parse --context: %w", err)
		}
		out = append(out, obj)
	}

	for i, a := range args {
		if i == 0 {
			out = append(out, a)
			continue
		}
		out = append(out, parseScalar(a))
	}
	return out, nil
}

func parseScalar(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
