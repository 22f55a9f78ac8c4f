// Package log provides the leveled logger used by Flik's commands.
package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log level names accepted by SetLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var zapLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "lvl",
	NameKey:        "name",
	CallerKey:      "caller",
	MessageKey:     "message",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// Default writes console-encoded entries to stderr so stdout stays
// free for command output.
var Default = New(os.Stderr)

// New builds a sugared logger writing to w at the shared level.
func New(w io.Writer) *zap.SugaredLogger {
	return zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(w),
			zapLevel,
		),
	).Sugar()
}

// SetLevel sets the level of every logger built by this package.
// Unknown names fall back to info.
func SetLevel(level string) {
	switch level {
	case LevelDebug:
		zapLevel.SetLevel(zapcore.DebugLevel)
	case LevelWarn:
		zapLevel.SetLevel(zapcore.WarnLevel)
	case LevelError:
		zapLevel.SetLevel(zapcore.ErrorLevel)
	default:
		zapLevel.SetLevel(zapcore.InfoLevel)
	}
}

// Debugf logs at debug level through Default.
func Debugf(format string, args ...any) { Default.Debugf(format, args...) }

// Infof logs at info level through Default.
func Infof(format string, args ...any) { Default.Infof(format, args...) }

// Warnf logs at warn level through Default.
func Warnf(format string, args ...any) { Default.Warnf(format, args...) }

// Errorf logs at error level through Default.
func Errorf(format string, args ...any) { Default.Errorf(format, args...) }
