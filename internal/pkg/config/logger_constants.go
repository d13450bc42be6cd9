package config

// Log levels accepted by logger.log_level
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks accepted by logger.log_type
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Record encodings accepted by logger.format. Console output defaults to text, files to json.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)
