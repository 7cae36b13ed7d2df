package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger configuration
type Config struct {
	Level  string    // debug, info, warn, error
	Pretty bool      // Enable pretty console output
	Out    io.Writer // defaults to stderr so reports on stdout stay clean
}

// New creates a new structured logger
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stderr
	if cfg.Out != nil {
		output = cfg.Out
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// SetGlobalLogger sets the package-level logger
func SetGlobalLogger(l zerolog.Logger) {
	log.Logger = l
}

// Adapter exposes a zerolog.Logger through the printf-style interface the
// calculation engine logs with.
type Adapter struct {
	zl zerolog.Logger
}

// NewAdapter wraps l; component is attached to every event
func NewAdapter(l zerolog.Logger, component string) *Adapter {
	return &Adapter{zl: l.With().Str("component", component).Logger()}
}

func (a *Adapter) Debugf(format string, args ...any) { a.zl.Debug().Msg(fmt.Sprintf(format, args...)) }
func (a *Adapter) Infof(format string, args ...any)  { a.zl.Info().Msg(fmt.Sprintf(format, args...)) }
func (a *Adapter) Warnf(format string, args ...any)  { a.zl.Warn().Msg(fmt.Sprintf(format, args...)) }
func (a *Adapter) Errorf(format string, args ...any) { a.zl.Error().Msg(fmt.Sprintf(format, args...)) }
