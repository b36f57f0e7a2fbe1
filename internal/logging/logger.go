// Package logging wraps charmbracelet/log for the iutf commands.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvLevel names the variable consulted when no level is given.
const EnvLevel = "IUTF_LOG_LEVEL"

const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldModule = "module"
	FieldFormat = "format"
	FieldURI    = "uri"
	FieldMethod = "method"
	FieldCount  = "count"
)

var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

type contextKey struct{}

var loggerKey = contextKey{}

func getDefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		if defaultLogger == nil {
			defaultLogger = New(os.Getenv(EnvLevel))
		}
	})
	return defaultLogger
}

// New creates a logger writing to stderr. Valid levels are "debug",
// "info", "warn" and "error"; anything else means "warn".
func New(level string) *log.Logger {
	return NewWriter(os.Stderr, level)
}

func NewWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "iutf",
	})
	setLoggerLevel(logger, level)
	return logger
}

func setLoggerLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
}

func Default() *log.Logger {
	return getDefaultLogger()
}

func SetDefault(logger *log.Logger) {
	defaultLoggerOnce.Do(func() {})
	defaultLogger = logger
}

// SetLevel updates the level of the default logger.
func SetLevel(level string) {
	setLoggerLevel(getDefaultLogger(), level)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}
