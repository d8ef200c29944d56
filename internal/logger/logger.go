package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	level  int
}

// New creates a Logger writing to stdout at the given minimum level.
// Unknown levels default to info.
func New(level string) Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a Logger writing to w (tests).
func NewWithWriter(level string, w io.Writer) Logger {
	current, ok := levels[strings.ToLower(level)]
	if !ok {
		current = levels["info"]
	}
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  current,
	}
}

func (l *implLogger) log(level, msg string, args ...interface{}) {
	if levels[level] < l.level {
		return
	}
	l.logger.Printf("["+strings.ToUpper(level)+"] "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log("debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log("info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log("warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log("error", msg, args...)
}
