package lcfg

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	lcfgparser "github.com/0xalexb/lcfg/config/parser/lcfg"
	yamlsource "github.com/0xalexb/lcfg/config/source/yaml"
	"github.com/0xalexb/lcfg/logging"
	"github.com/0xalexb/lcfg/tree"
)

// Syntax selects the input format.
type Syntax string

const (
	// SyntaxLcfg is the lcfg text format.
	SyntaxLcfg Syntax = "lcfg"
	// SyntaxYAML is YAML, flattened into the same key/value stream.
	SyntaxYAML Syntax = "yaml"
)

// ErrUnknownSyntax is returned for a Syntax other than SyntaxLcfg or SyntaxYAML.
var ErrUnknownSyntax = errors.New("unknown syntax")

// Options holds settings for loading a configuration tree.
type Options struct {
	Logger    *slog.Logger
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
	Syntax    Syntax
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithLogger sets the logger used while building the tree.
// It takes precedence over WithLogLevel and WithLogFormat.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithLogLevel creates a dedicated logger with the given level.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" output for the dedicated logger.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput sets where the dedicated logger writes. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithSyntax selects the input format. Defaults to SyntaxLcfg.
func WithSyntax(syntax Syntax) Option {
	return func(opts *Options) {
		opts.Syntax = syntax
	}
}

func newOptions(opts []Option) Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return options
}

// logger returns the configured logger, a dedicated one when a level or format was
// given, or nil to let callers fall back to their own default.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	if o.LogLevel == "" && o.LogFormat == "" {
		return nil
	}

	w := o.LogOutput
	if w == nil {
		w = os.Stderr
	}

	return logging.NewLogger(logging.LoggerConfig{Level: o.LogLevel, Format: o.LogFormat}, w)
}

func (o Options) parser(logger *slog.Logger) (*lcfgparser.Parser, error) {
	parserOpts := []lcfgparser.Option{lcfgparser.WithLogger(logger)}

	switch o.Syntax {
	case "", SyntaxLcfg:
	case SyntaxYAML:
		parserOpts = append(parserOpts, lcfgparser.WithSourceFunc(func(data []byte) (tree.Source, error) {
			return yamlsource.NewSource(data), nil
		}))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSyntax, o.Syntax)
	}

	return lcfgparser.NewParser(parserOpts...), nil
}
