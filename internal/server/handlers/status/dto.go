package status

import (
	"time"

	"github.com/google/uuid"
)

// StatusResponse describes the watcher's current state.
type StatusResponse struct {
	Target   string `json:"target"`
	Interval string `json:"interval"`

	// BaselineFingerprint is empty while the target state is unknown.
	BaselineFingerprint string `json:"baseline_fingerprint"`
}

// CycleResponse is one recorded stage/commit/push/notify cycle.
type CycleResponse struct {
	ID uuid.UUID `json:"id"`

	Target string `json:"target"`

	OldFingerprint string `json:"old_fingerprint"`
	NewFingerprint string `json:"new_fingerprint"`

	Files      []string `json:"files,omitempty"`
	CommitHash string   `json:"commit_hash,omitempty"`

	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`

	DetectedAt time.Time `json:"detected_at"`
	CreatedAt  time.Time `json:"created_at"`
}
