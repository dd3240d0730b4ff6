// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/leashdev/leash/internal/core/ports"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error. Errors
// without it fall back to standard handling.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
}

// New creates a new Logger writing human-readable text to stderr.
func New() ports.Logger {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a Logger writing to w.
func NewWithOutput(w io.Writer) ports.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
	}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain rendered hierarchically.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.logger.Error(formatErrorChain(collectMessages(err)))
}

// collectMessages walks the error chain and returns one message per layer.
// A zerr error contributes its own message without the chain; a standard
// error contributes its full Error() text and ends the walk.
func collectMessages(err error) []string {
	var messages []string
	for err != nil {
		if m, ok := err.(messager); ok {
			messages = append(messages, m.Message())
			err = errors.Unwrap(err)
			continue
		}
		messages = append(messages, err.Error())
		break
	}
	return messages
}

// formatErrorChain renders the collected messages as a main error followed
// by an indented cause list.
func formatErrorChain(messages []string) string {
	var lines []string
	for i, msg := range messages {
		parts := strings.Split(msg, "\n")
		switch i {
		case 0:
			lines = append(lines, "Error: "+parts[0])
			for _, p := range parts[1:] {
				lines = append(lines, "       "+p)
			}
		default:
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    -> "+parts[0])
			for _, p := range parts[1:] {
				lines = append(lines, "       "+p)
			}
		}
	}
	return strings.Join(lines, "\n")
}
