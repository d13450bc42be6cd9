package logger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
)

// levelCritical sits above slog.LevelError so critical records survive an error threshold
const levelCritical = slog.LevelError + 4

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger initializes the process-wide logger. Later calls return the first result.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the logger created by InitLogger.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func newLogger(settings *config.LoggerSettings) (Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch settings.LogType {
	case config.LogTypeConsole:
		return NewConsoleLogger(settings.LogLevel, settings.RecordFormat()), nil
	case config.LogTypeFile:
		return NewFileLogger(settings), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	case config.LogLevelCritical:
		return levelCritical
	default:
		return slog.LevelInfo
	}
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
