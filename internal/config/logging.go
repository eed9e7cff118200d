package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents logging verbosity levels.
type LogLevel int

// Log level constants.
const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelDebug
)

// ParseLogLevel parses a log level string.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return LogLevelOff
	case "error":
		return LogLevelError
	case "info":
		return LogLevelInfo
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelError
	}
}

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelOff:
		return "off"
	case LogLevelError:
		return "error"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	default:
		return "error"
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelOff, LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Default rotation settings.
const (
	DefaultLogMaxAge       = 7 * 24 * time.Hour
	DefaultLogRotationTime = 24 * time.Hour
)

type logOptions struct {
	maxAge       time.Duration
	rotationTime time.Duration
}

// LogOption configures file rotation for NewLogger.
type LogOption func(*logOptions)

// WithMaxAge sets how long rotated log files are kept.
func WithMaxAge(d time.Duration) LogOption {
	return func(o *logOptions) {
		if d > 0 {
			o.maxAge = d
		}
	}
}

// WithRotationTime sets how often a new log file is started.
func WithRotationTime(d time.Duration) LogOption {
	return func(o *logOptions) {
		if d > 0 {
			o.rotationTime = d
		}
	}
}

// Logger writes JSON log lines to a time-rotated file.
// Secrets (seed phrases, seeds, keys) must never be passed to it.
type Logger struct {
	mu       sync.Mutex
	level    LogLevel
	zl       *zap.Logger
	rotator  *rotatelogs.RotateLogs
	filePath string
}

// NewLogger creates a new logger. With LogLevelOff or an empty path the
// logger discards everything. filePath is the name of a symlink that always
// points at the current log file; rotated files get a date suffix.
func NewLogger(level LogLevel, filePath string, opts ...LogOption) (*Logger, error) {
	logger := &Logger{
		level:    level,
		filePath: filePath,
		zl:       zap.NewNop(),
	}

	if level == LogLevelOff || filePath == "" {
		return logger, nil
	}

	options := logOptions{
		maxAge:       DefaultLogMaxAge,
		rotationTime: DefaultLogRotationTime,
	}
	for _, opt := range opts {
		opt(&options)
	}

	// Expand home directory
	if strings.HasPrefix(filePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		filePath = filepath.Join(home, filePath[2:])
	}

	// Ensure directory exists
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}

	rotator, err := rotatelogs.New(
		filePath+".%Y%m%d%H",
		rotatelogs.WithLinkName(filePath),
		rotatelogs.WithMaxAge(options.maxAge),
		rotatelogs.WithRotationTime(options.rotationTime))
	if err != nil {
		return nil, fmt.Errorf("creating log rotator: %w", err)
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), zapcore.DebugLevel)

	logger.zl = zap.New(core)
	logger.rotator = rotator
	logger.filePath = filePath

	return logger, nil
}

// Close flushes and closes the current log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rotator == nil {
		return nil
	}
	_ = l.zl.Sync()
	err := l.rotator.Close()
	l.rotator = nil
	l.zl = zap.NewNop()
	return err
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LogLevelDebug, fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LogLevelInfo, fmt.Sprintf(format, args...))
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LogLevelError, fmt.Sprintf(format, args...))
}

// With logs msg with structured fields at the given level.
func (l *Logger) With(level LogLevel, msg string, fields ...zap.Field) {
	l.log(level, msg, fields...)
}

// Writer returns an io.Writer that writes to the logger at the specified level.
func (l *Logger) Writer(level LogLevel) io.Writer {
	return &logWriter{logger: l, level: level}
}

// log writes a log entry if the level is appropriate.
func (l *Logger) log(level LogLevel, msg string, fields ...zap.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.level == LogLevelOff || level > l.level || l.rotator == nil {
		return
	}

	if ce := l.zl.Check(level.zapLevel(), msg); ce != nil {
		ce.Write(fields...)
	}
}

// logWriter implements io.Writer for the logger.
type logWriter struct {
	logger *Logger
	level  LogLevel
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.logger.log(w.level, strings.TrimSpace(string(p)))
	return len(p), nil
}

// NullLogger returns a logger that discards all output.
func NullLogger() *Logger {
	return &Logger{level: LogLevelOff, zl: zap.NewNop()}
}
