package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs.
	FormatText Format = "text"
	// FormatConsole outputs colored single-line logs for terminals.
	FormatConsole Format = "console"
	// FormatDev outputs multi-line pretty logs for local development.
	FormatDev Format = "dev"
)

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format. It panics on unknown formats so a
// misconfigured logger fails at startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText, FormatConsole, FormatDev:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be one of %q, %q, %q, %q",
				f, FormatJSON, FormatText, FormatConsole, FormatDev))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *config) {
		c.format = FormatText
	}
}

func WithJSONFormatter() Option {
	return func(c *config) {
		c.format = FormatJSON
	}
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithHandlerOptions replaces the slog handler options. The level set with
// WithLevel is ignored when these are given. Nil is ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		if opts != nil {
			c.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithContextExtractors registers functions that add attributes from the
// context of each record. Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue logs ctx.Value(key) under name whenever it is set.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithViolationDetails expands every logged error that carries a constraint
// violation into the group produced by Violation, keeping the attribute key.
// It works with every format.
func WithViolationDetails() Option {
	return func(c *config) {
		c.expandViolations = true
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level            slog.Level
	format           Format
	output           io.Writer
	attrs            []slog.Attr
	handlerOptions   *slog.HandlerOptions
	extractors       []ContextExtractor
	expandViolations bool
}

func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// New creates a configured slog.Logger. Context extractors run on every
// record through a handler decorator.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	if cfg.handlerOptions != nil {
		copied := *cfg.handlerOptions
		handlerOpts = &copied
	}

	handler := newHandler(cfg.format, cfg.output, handlerOpts)
	if cfg.expandViolations {
		handler = slogformatter.NewFormatterHandler(violationFormatter)(handler)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewLogHandlerDecorator(handler, cfg.extractors...))
}

func newHandler(format Format, w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch format {
	case FormatText:
		return slog.NewTextHandler(w, opts)
	case FormatConsole:
		return console.NewHandler(w, &console.HandlerOptions{
			AddSource:  opts.AddSource,
			Level:      opts.Level,
			TimeFormat: time.RFC3339,
		})
	case FormatDev:
		return devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: opts,
			SortKeys:       true,
			TimeFormat:     time.RFC3339,
		})
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

var violationFormatter = slogformatter.FormatByType(func(err error) slog.Value {
	if v := Violation(err); v.Key != "" {
		return v.Value
	}
	return slog.AnyValue(err)
})
