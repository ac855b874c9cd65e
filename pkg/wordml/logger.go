package wordml

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger is the package logger. It discards everything until SetLogger or
// InitConsoleLogger is called, so library consumers pay nothing by default.
var logger = zerolog.Nop()

// SetLogger installs a logger for this package.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// InitConsoleLogger wires a human-readable stderr logger at the level named
// by the global configuration and returns it. Intended for command-line
// front ends.
func InitConsoleLogger(app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	level := parseLogLevel(GetGlobalConfig().LogLevel)
	l := zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
	SetLogger(l)
	return l
}

func parseLogLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}
