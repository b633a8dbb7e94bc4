package fingerprint

type Config struct {
	// Exclude lists base names skipped when walking a directory target,
	// e.g. the daemon's own configuration file. The ".git" directory is
	// always skipped.
	Exclude []string
}
