package logger

import (
	"os"
)

// ConsoleLogger writes records to standard output.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a console logger. format is config.LogFormatText or config.LogFormatJSON.
func NewConsoleLogger(level, format string) Logger {
	return &ConsoleLogger{newSlogLogger(os.Stdout, level, format)}
}
