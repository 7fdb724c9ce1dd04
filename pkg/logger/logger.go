// Package logger - printf-логгер поверх zerolog.
// Пишет JSON в stdout и, если указан файл, дублирует в него.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger уровневый логгер с методами в стиле Printf
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New создает логгер. filePath может быть пустым - тогда только stdout.
func New(filePath string, level string) (*Logger, error) {
	writers := []io.Writer{os.Stdout}

	var file *os.File
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	l := NewWithWriter(io.MultiWriter(writers...), level)
	l.file = file
	return l, nil
}

// NewWithWriter создает логгер поверх произвольного writer (удобно в тестах)
func NewWithWriter(w io.Writer, level string) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return &Logger{
		zl: zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger(),
	}
}

// Nop логгер, который ничего не пишет
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal пишет сообщение и завершает процесс с кодом 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.WithLevel(zerolog.FatalLevel).Msgf(format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
