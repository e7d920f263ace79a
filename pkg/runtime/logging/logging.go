package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const DefaultFile = "edi_analytics_dashboard.log"

type Settings struct {
	Level   string
	File    string    // empty disables the file sink
	Console io.Writer // defaults to os.Stderr
}

// Logger is the process-wide diagnostic logger. Close flushes the file sink.
type Logger struct {
	zerolog.Logger
	file *os.File
}

func New(settings Settings) (*Logger, error) {
	level := zerolog.DebugLevel
	if settings.Level != "" {
		parsed, err := zerolog.ParseLevel(settings.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", settings.Level, err)
		}
		level = parsed
	}

	console := settings.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: time.DateTime, NoColor: true}}

	var file *os.File
	if settings.File != "" {
		f, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger, file: file}, nil
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
