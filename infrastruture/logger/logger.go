// Package logger provides per-component structured loggers backed by bolt.
package logger

import (
	"errors"
	"io"
	"strings"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/beka-birhanu/vacuum-planner/service/i"
)

var _ i.Logger = &Logger{}

var (
	ErrMissingComponent = errors.New("logger component name is required")
	ErrMissingOutput    = errors.New("logger output is required")
)

// Option adjusts a Logger at construction.
type Option func(*options)

type options struct {
	level string
	json  bool
}

// WithLevel sets the minimum level (debug, info, warn, error).
func WithLevel(level string) Option {
	return func(o *options) { o.level = level }
}

// WithFormat selects "json" or "console" output.
func WithFormat(format string) Option {
	return func(o *options) { o.json = strings.EqualFold(format, "json") }
}

// Logger tags every event with the component it was created for.
type Logger struct {
	log       *bolt.Logger
	component string
}

// New creates a logger for component writing to out. In console output the
// component name is wrapped in color.
func New(component, color string, out io.Writer, opts ...Option) (*Logger, error) {
	if component == "" {
		return nil, ErrMissingComponent
	}
	if out == nil {
		return nil, ErrMissingOutput
	}

	o := &options{level: "info"}
	for _, opt := range opts {
		opt(o)
	}

	var handler bolt.Handler
	if o.json {
		handler = bolt.NewJSONHandler(out)
	} else {
		handler = bolt.NewConsoleHandler(out)
		if color != "" {
			component = color + component + "\033[0m"
		}
	}

	return &Logger{
		log:       bolt.New(handler).SetLevel(parseLevel(o.level)),
		component: component,
	}, nil
}

// parseLevel converts a string level to bolt.Level.
func parseLevel(s string) bolt.Level {
	switch strings.ToLower(s) {
	case "debug":
		return bolt.DEBUG
	case "warn", "warning":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

// Debug implements i.Logger.
func (l *Logger) Debug(msg string) {
	l.log.Debug().Str("component", l.component).Msg(msg)
}

// Info implements i.Logger.
func (l *Logger) Info(msg string) {
	l.log.Info().Str("component", l.component).Msg(msg)
}

// Warning implements i.Logger.
func (l *Logger) Warning(msg string) {
	l.log.Warn().Str("component", l.component).Msg(msg)
}

// Error implements i.Logger.
func (l *Logger) Error(msg string) {
	l.log.Error().Str("component", l.component).Msg(msg)
}
