package logger

import (
	"hotelier/config"
	"hotelier/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var stdout io.Writer = os.Stdout

// InitLogger sets up console logging at trace level until config is read.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

// Configure switches to JSON lines outside development, tags every entry with the app name
// and applies the configured level.
func Configure(config *config.Config) {
	var output io.Writer = zerolog.ConsoleWriter{Out: stdout, TimeFormat: time.RFC3339}
	if config.Server.Env != constant.ServerEnvDevelopment {
		zerolog.TimeFieldFormat = time.RFC3339
		output = stdout
	}

	builder := zerolog.New(output).With().Timestamp()
	if config.App.Name != "" {
		builder = builder.Str("app", config.App.Name)
	}

	log.Logger = builder.Logger()

	// log.Ctx falls back to the global logger for contexts without one attached.
	zerolog.DefaultContextLogger = &log.Logger

	SetLogLevel(config)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies the configured level, falling back to trace when the value cannot be parsed.
func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
