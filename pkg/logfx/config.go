package logfx

// Config holds the configuration for the application logger.
type Config struct {
	// Level is the minimum enabled logging level ("debug", "info", "warn", "error").
	// Defaults to "info".
	Level string

	// File is an optional path to an append-only log file. When set, log
	// output goes to both stdout and the file.
	File string
}
