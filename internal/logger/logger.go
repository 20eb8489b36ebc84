package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New creates a console logger writing to stderr.
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return log.Output(output).With().Timestamp().Logger()
}

// NewWithLevel creates a console logger filtered to the given level.
func NewWithLevel(level zerolog.Level) zerolog.Logger {
	return New().Level(level)
}
