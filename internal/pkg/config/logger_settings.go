package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings selects the log sink, level and record encoding. The rotation
// fields only apply to the file sink.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=text json"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}

	switch {
	case s.FilePath == "":
		return fmt.Errorf("file path is required for file logger")
	case s.MaxSize < 1 || s.MaxSize > 100:
		return fmt.Errorf("max size must be between 1 and 100 MB")
	case s.MaxBackups < 1 || s.MaxBackups > 10:
		return fmt.Errorf("max backups must be between 1 and 10")
	case s.MaxAge < 1 || s.MaxAge > 365:
		return fmt.Errorf("max age must be between 1 and 365 days")
	}

	return nil
}

// RecordFormat returns the configured encoding or the default of the sink
func (s *LoggerSettings) RecordFormat() string {
	if s.Format != "" {
		return s.Format
	}
	if s.LogType == LogTypeFile {
		return LogFormatJSON
	}
	return LogFormatText
}
