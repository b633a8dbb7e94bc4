package history

import (
	"time"

	"github.com/google/uuid"
)

// Outcome records how far a cycle got.
type Outcome string

const (
	OutcomeCompleted       Outcome = "completed"
	OutcomeNothingToCommit Outcome = "nothing_to_commit"
	OutcomeStageFailed     Outcome = "stage_failed"
	OutcomeCommitFailed    Outcome = "commit_failed"
	OutcomePushFailed      Outcome = "push_failed"

	// OutcomeNotifyFailed still counts as a completed cycle: the commit and
	// push are done and are never rolled back over a lost email.
	OutcomeNotifyFailed Outcome = "notify_failed"
)

type RecordDraft struct {
	Target string

	OldFingerprint string
	NewFingerprint string

	Files      []string
	CommitHash string

	Outcome Outcome
	Error   string

	DetectedAt time.Time
}

type Record struct {
	RecordDraft

	ID        uuid.UUID
	CreatedAt time.Time
}
