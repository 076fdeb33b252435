// Package logging provides a zap-backed scryfall.Logger.
package logging

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger implements scryfall.Logger on top of a zap logger.
type Logger struct {
	zap *zap.Logger
}

// ParseLevel maps a level name onto a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New creates a JSON logger writing to out at the given level.
func New(out io.Writer, level string) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(out)),
		ParseLevel(level),
	)

	return &Logger{zap: zap.New(core)}
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(logger *zap.Logger) *Logger {
	return &Logger{zap: logger}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

// Debug implements scryfall.Logger.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.zap.Debug(msg, toZapFields(fields)...)
}

// Info implements scryfall.Logger.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.zap.Info(msg, toZapFields(fields)...)
}

// Warn implements scryfall.Logger.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.zap.Warn(msg, toZapFields(fields)...)
}

// Error implements scryfall.Logger.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.zap.Error(msg, toZapFields(fields)...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		out = append(out, zap.Any(key, value))
	}

	return out
}
