package config

// Log level constants
const (
	LogLevelInfo    = "info"
	LogLevelDebug   = "debug"
	LogLevelError   = "error"
	LogLevelWarning = "warning"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)
