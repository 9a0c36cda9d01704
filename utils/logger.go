package utils

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel enumerates severity tiers.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l LogLevel) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLogLevel maps a flag value such as "debug" or "WARN" to a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return LogLevel(i), nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q (expected debug|info|warn|error)", s)
}

// Logger is a levelled logger shared by every program.
//
// Standard output belongs to the interactive session and standard error is
// kept clean, so records are written only to an explicit log file. Without
// one the logger discards everything.
type Logger struct {
	mu    sync.Mutex
	level LogLevel
	sugar *zap.SugaredLogger
	file  *os.File
}

var (
	globalLogger *Logger
	globalErr    error
	logOnce      sync.Once
)

// NewLogger builds a logger writing to logFilePath, or a no-op logger when
// the path is empty.
func NewLogger(minLevel LogLevel, logFilePath string) (*Logger, error) {
	if logFilePath == "" {
		return &Logger{level: minLevel, sugar: zap.NewNop().Sugar()}, nil
	}

	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", logFilePath, err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), minLevel.zapLevel())

	return &Logger{
		level: minLevel,
		sugar: zap.New(core).Sugar(),
		file:  f,
	}, nil
}

// InitLogger creates the singleton logger. Call once at startup.
func InitLogger(minLevel LogLevel, logFilePath string) (*Logger, error) {
	logOnce.Do(func() {
		globalLogger, globalErr = NewLogger(minLevel, logFilePath)
	})
	if globalErr != nil {
		return nil, globalErr
	}
	return globalLogger, nil
}

// L returns the global logger, falling back to a no-op logger when
// InitLogger has not been called (tests, library use).
func L() *Logger {
	if globalLogger == nil {
		l, _ := NewLogger(INFO, "")
		return l
	}
	return globalLogger
}

// Level reports the minimum level that is emitted.
func (l *Logger) Level() LogLevel {
	return l.level
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.sugar.Sync()
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

func (l *Logger) Debug(f string, a ...any) { l.sugar.Debugf(f, a...) }
func (l *Logger) Info(f string, a ...any)  { l.sugar.Infof(f, a...) }
func (l *Logger) Warn(f string, a ...any)  { l.sugar.Warnf(f, a...) }
func (l *Logger) Error(f string, a ...any) { l.sugar.Errorf(f, a...) }
