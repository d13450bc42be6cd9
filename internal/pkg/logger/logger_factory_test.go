//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestNewLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "api.log")

	tests := []struct {
		name     string
		settings config.LoggerSettings
		wantType interface{}
		wantErr  bool
	}{
		{
			name:     "console text",
			settings: config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole},
			wantType: &ConsoleLogger{},
		},
		{
			name:     "console json",
			settings: config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole, Format: config.LogFormatJSON},
			wantType: &ConsoleLogger{},
		},
		{
			name: "rotated file",
			settings: config.LoggerSettings{
				LogLevel: config.LogLevelWarning, LogType: config.LogTypeFile,
				FilePath: logPath, MaxSize: 10, MaxBackups: 3, MaxAge: 28,
			},
			wantType: &FileLogger{},
		},
		{
			name:     "unknown level",
			settings: config.LoggerSettings{LogLevel: "trace", LogType: config.LogTypeConsole},
			wantErr:  true,
		},
		{
			name:     "file without rotation",
			settings: config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: logPath},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := newLogger(&tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, logger)
		})
	}
}

func TestInitLogger_FileSink(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	settings := &config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   filepath.Join(t.TempDir(), "videoshare.log"),
		MaxSize:    5,
		MaxBackups: 2,
		MaxAge:     7,
	}
	require.NoError(t, InitLogger(settings))

	logger, err := GetLogger()
	require.NoError(t, err)
	logger.Info("migrations applied")

	_, err = os.Stat(settings.FilePath)
	assert.NoError(t, err)
}

func TestInitLogger_InvalidSettingsLeaveNoLogger(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	err := InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"})
	assert.Error(t, err)

	logger, err := GetLogger()
	assert.Nil(t, logger)
	assert.ErrorContains(t, err, "not initialized")
}

func TestInitLogger_FirstCallWins(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	first, err := GetLogger()
	require.NoError(t, err)

	assert.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: "bogus", LogType: config.LogTypeConsole}))
	second, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestParseLevel(t *testing.T) {
	levels := map[string]slog.Level{
		config.LogLevelDebug:    slog.LevelDebug,
		config.LogLevelInfo:     slog.LevelInfo,
		config.LogLevelWarning:  slog.LevelWarn,
		config.LogLevelError:    slog.LevelError,
		config.LogLevelCritical: levelCritical,
		"":                      slog.LevelInfo,
	}

	for level, want := range levels {
		assert.Equal(t, want, parseLevel(level), "level %q", level)
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Empty(t, formatArgs())
	assert.Equal(t, "video v-1 deleted", formatArgs("video ", "v-1", " deleted"))
	assert.Equal(t, "seeded 3 categories", formatArgs("seeded ", 3, " categories"))
}
