package watcher

import (
	"context"
	"time"
)

// Hasher computes the content fingerprint of the monitored target. An empty
// fingerprint means the target's state is unknown (e.g. it does not exist).
type Hasher interface {
	Fingerprint(target string) (string, error)
}

// Repository is the narrow view of the version control client the watch
// loop needs.
type Repository interface {
	// Stage stages every change under path, relative to the working tree.
	Stage(ctx context.Context, path string) error

	// StagedFiles returns the paths currently staged for commit.
	StagedFiles(ctx context.Context) ([]string, error)

	// Commit commits the staged changes and returns the commit hash.
	Commit(ctx context.Context, message string) (string, error)

	// RemoteInfo describes the configured remotes for diagnostics.
	RemoteInfo(ctx context.Context) []string

	// Push pushes the configured branch to the configured remote.
	Push(ctx context.Context) error
}

// Sender delivers the change notification.
type Sender interface {
	Send(ctx context.Context, body string) error
}

// ChangeEvent captures one detected change, used to build the commit
// message and the notification body.
type ChangeEvent struct {
	OldFingerprint string
	NewFingerprint string

	Files []string

	Timestamp time.Time
}
