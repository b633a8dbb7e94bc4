package watcher

import "time"

type Config struct {
	// RepoPath is the git working tree containing the monitored target.
	RepoPath string

	// Target is the monitored file or directory, relative to RepoPath.
	Target string

	// Interval is the poll interval.
	Interval time.Duration

	// FSEvents wakes the loop early on filesystem events. Polling remains
	// the source of truth either way.
	FSEvents bool
}
