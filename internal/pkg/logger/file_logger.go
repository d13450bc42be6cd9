package logger

import (
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// FileLogger writes records to a size-rotated, compressed log file.
type FileLogger struct {
	slogLogger
}

// NewFileLogger creates a file logger from the rotation settings
func NewFileLogger(settings *config.LoggerSettings) Logger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   true,
	}

	return &FileLogger{newSlogLogger(writer, settings.LogLevel, settings.RecordFormat())}
}
