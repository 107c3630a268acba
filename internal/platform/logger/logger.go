package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat: "text"/"console"/"pretty" => consola legible; cualquier otro => JSON.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "console", "pretty":
		return FormatText
	default:
		return FormatJSON
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Output por defecto es os.Stdout.
	Output io.Writer
}

// zeroLogger adapta zerolog a la interfaz Logger.
type zeroLogger struct {
	zl zerolog.Logger
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Format == FormatText {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}

	ctx := zerolog.New(out).Level(opts.Level.zerolog()).With().Timestamp()
	if app := strings.TrimSpace(opts.App); app != "" {
		ctx = ctx.Str("app", app)
	}

	return &zeroLogger{zl: ctx.Logger()}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default json)
// - APP_NAME (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

// Nop descarta todo; útil en tests.
func Nop() Logger {
	return &zeroLogger{zl: zerolog.Nop()}
}

func (l *zeroLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &zeroLogger{zl: l.zl.With().Fields(clean(fields)).Logger()}
}

func (l *zeroLogger) Debug(msg string, fields map[string]any) {
	l.zl.Debug().Fields(clean(fields)).Msg(msg)
}

func (l *zeroLogger) Info(msg string, fields map[string]any) {
	l.zl.Info().Fields(clean(fields)).Msg(msg)
}

func (l *zeroLogger) Warn(msg string, fields map[string]any) {
	l.zl.Warn().Fields(clean(fields)).Msg(msg)
}

func (l *zeroLogger) Error(msg string, fields map[string]any) {
	l.zl.Error().Fields(clean(fields)).Msg(msg)
}

// clean descarta keys vacías.
func clean(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out[k] = v
	}
	return out
}
