// Package logging provides the structured logger used across slam3d.
//
// It mirrors the shape of go.viam.com/rdk/logging: a small Logger interface
// backed by go.uber.org/zap, injected into every component that needs it
// rather than reached for as a package global. Nothing in this module holds
// a logger at package scope.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logging collaborator borrowed by mapper.
// Implementations must be safe for concurrent
// use, though the mapper itself is not reentrant (spec §5).
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Named returns a descendant logger whose name is prefixed with this
	// logger's name, e.g. Named("mapper").Named("gicp") -> "mapper.gicp".
	Named(name string) Logger

	// Sync flushes any buffered log entries. Safe to call on shutdown.
	Sync() error
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger returns a Logger that writes Info+ logs to stdout.
func NewLogger(name string) Logger {
	return newZapLogger(name, zapcore.InfoLevel)
}

// NewDebugLogger returns a Logger that writes Debug+ logs to stdout.
func NewDebugLogger(name string) Logger {
	return newZapLogger(name, zapcore.DebugLevel)
}

func newZapLogger(name string, level zapcore.Level) Logger {
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		DisableCaller:    false,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
	}
	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// zap.Config.Build only fails on a malformed config; ours is static.
		panic(err)
	}
	return &zapLogger{sugar: built.Named(name).Sugar()}
}

func (l *zapLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *zapLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

func (l *zapLogger) Named(name string) Logger {
	return &zapLogger{sugar: l.sugar.Named(name)}
}

func (l *zapLogger) Sync() error {
	return l.sugar.Sync()
}
