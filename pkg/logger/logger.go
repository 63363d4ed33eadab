package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=../mocks/mock_logger.go -package=mocks github.com/Notifuse/sitebuilder/pkg/logger Logger

type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Fatal(msg string)
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

type zerologLogger struct {
	logger zerolog.Logger
}

// NewLogger returns a JSON logger on stdout at info level
func NewLogger() Logger {
	return NewLoggerWithLevel("info")
}

// NewLoggerWithLevel returns a JSON logger on stdout. Unknown levels fall back to info.
func NewLoggerWithLevel(level string) Logger {
	return NewLoggerWithWriter(os.Stdout, level)
}

// NewLoggerWithWriter is NewLoggerWithLevel with an explicit sink
func NewLoggerWithWriter(w io.Writer, level string) Logger {
	logger := zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
	return &zerologLogger{
		logger: logger,
	}
}

// ParseLevel maps a LOG_LEVEL setting to a zerolog level
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *zerologLogger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

func (l *zerologLogger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

func (l *zerologLogger) Warn(msg string) {
	l.logger.Warn().Msg(msg)
}

func (l *zerologLogger) Error(msg string) {
	l.logger.Error().Msg(msg)
}

func (l *zerologLogger) Fatal(msg string) {
	l.logger.Fatal().Msg(msg)
}

func (l *zerologLogger) WithField(key string, value interface{}) Logger {
	return &zerologLogger{
		logger: l.logger.With().Interface(key, value).Logger(),
	}
}

// WithFields returns a child logger; the receiver is not modified
func (l *zerologLogger) WithFields(fields map[string]interface{}) Logger {
	return &zerologLogger{
		logger: l.logger.With().Fields(fields).Logger(),
	}
}
