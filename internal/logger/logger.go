package logger

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// default logger instance
	defaultLogger atomic.Pointer[zap.SugaredLogger]
)

// initializes the logger based on environment
func init() {
	l, err := build(os.Getenv("ENVIRONMENT"), "")
	if err != nil {
		l = zap.NewNop()
	}

	defaultLogger.Store(l.Sugar())
}

// rebuilds the default logger for the given environment and level
func Configure(env, level string) error {
	l, err := build(env, level)
	if err != nil {
		return err
	}

	defaultLogger.Store(l.Sugar())

	return nil
}

// replaces the default logger (tests use this with an observer core)
func SetDefault(l *zap.Logger) {
	defaultLogger.Store(l.Sugar())
}

func build(env, level string) (*zap.Logger, error) {
	var cfg zap.Config

	if env == "production" {
		// production: JSON output for structured logging
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		// development: human-readable console output
		cfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return l, nil
}

// returns the default logger instance
func Default() *zap.SugaredLogger {
	return defaultLogger.Load()
}

// creates a logger with additional context fields
func With(args ...any) *zap.SugaredLogger {
	return Default().With(args...)
}

// creates a logger with context
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return Default()
	}

	// extract any logger from context if present
	if l, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
		return l
	}

	return Default()
}

// adds logger to context
func WithContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// helper type for context key
type loggerKey struct{}

// flushes buffered entries
func Sync() {
	_ = Default().Sync() //nolint:errcheck // stderr sync fails on some platforms
}

// convenience functions for common log levels

// logs a debug message
func Debug(msg string, args ...any) {
	Default().Debugw(msg, args...)
}

// logs an info message
func Info(msg string, args ...any) {
	Default().Infow(msg, args...)
}

// logs a warning message
func Warn(msg string, args ...any) {
	Default().Warnw(msg, args...)
}

// logs an error message
func Error(msg string, args ...any) {
	Default().Errorw(msg, args...)
}

// logs an error with context
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	Default().Errorw(msg, args...)
}

// logs a fatal error with error and exits
func FatalErr(err error, msg string, args ...any) {
	ErrorErr(err, msg, args...)
	Sync()
	os.Exit(1)
}
