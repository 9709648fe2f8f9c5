package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// defaultZapLevel defines the fallback log level when an unknown level string is provided.
const defaultZapLevel = zapcore.DebugLevel

// toZapLevel converts a textual level to zapcore.Level using known level constants.
func toZapLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

// newEncoder picks a console or JSON encoder; unknown formats fall back to console.
func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	if format == FormatJSON {
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.TimeKey = ""
	return zapcore.NewConsoleEncoder(cfg)
}

// newCore builds a zapcore.Core writing to w (stdout when nil).
func newCore(level zapcore.Level, format string, w io.Writer) zapcore.Core {
	if w == nil {
		w = os.Stdout
	}
	ws := zapcore.Lock(zapcore.AddSync(w)) // thread-safe writer
	return zapcore.NewCore(newEncoder(format), ws, zap.NewAtomicLevelAt(level))
}

// newZapLogger constructs a sugared zap logger with the provided level string.
func newZapLogger(levelStr, format string, w io.Writer) *Logger {
	core := newCore(toZapLevel(levelStr), format, w)
	return &Logger{
		SugaredLogger: zap.New(core).Sugar(),
	}
}

// New builds a non-singleton logger writing to w (stdout when nil).
func New(level, format string, w io.Writer) *Logger {
	return newZapLogger(level, format, w)
}

// NewFile builds a logger appending to path. The TUI logs here so its
// output does not interleave with the terminal frame.
func NewFile(level, format, path string) (*Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	return newZapLogger(level, format, f), f, nil
}
