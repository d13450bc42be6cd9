package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
)

// ServiceName is attached to every record as the "service" attribute
const ServiceName = "videoshare"

// slogLogger adapts a slog.Logger to the Logger interface.
// Console and file loggers only differ in their writer.
type slogLogger struct {
	logger *slog.Logger
}

func newSlogLogger(w io.Writer, level, format string) slogLogger {
	opts := &slog.HandlerOptions{Level: parseLevel(level), ReplaceAttr: renameCritical}

	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slogLogger{logger: slog.New(handler).With("service", ServiceName)}
}

// renameCritical prints levelCritical as CRITICAL instead of ERROR+4
func renameCritical(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok && level == levelCritical {
			a.Value = slog.StringValue("CRITICAL")
		}
	}
	return a
}

func (l *slogLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs at critical level and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Log(context.Background(), levelCritical, formatArgs(args...))
	os.Exit(1)
}

// Panic logs at critical level and panics with the message.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Log(context.Background(), levelCritical, msg)
	panic(msg)
}

func (l *slogLogger) With(keyValues ...interface{}) Logger {
	return &slogLogger{logger: l.logger.With(keyValues...)}
}
