package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger обертка над zerolog с printf-стилем вызовов.
// Пишет в файл, если путь задан, иначе в stdout.
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New создает логгер с указанным файлом и уровнем ("debug", "info", "warn", "error")
func New(filePath, level string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: invalid level %q: %w", level, err)
	}

	var w io.Writer = os.Stdout
	var f *os.File
	if filePath != "" {
		f, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %q: %w", filePath, err)
		}
		w = f
	}

	zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &Logger{zl: zl, file: f}, nil
}

// Debug логирует сообщение с уровнем debug
func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

// Info логирует сообщение с уровнем info
func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Warn логирует сообщение с уровнем warn
func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

// Error логирует сообщение с уровнем error
func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal логирует сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Fatal().Msgf(format, v...)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
