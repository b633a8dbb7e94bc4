package history

import (
	"time"

	"github.com/gitpulse/gitpulse/internal/storage"
)

// recordModel is the stored form of a cycle record.
type recordModel struct {
	storage.BaseEntity

	Target string `json:"target"`

	OldFingerprint string `json:"old_fingerprint"`
	NewFingerprint string `json:"new_fingerprint"`

	Files      []string `json:"files"`
	CommitHash string   `json:"commit_hash"`

	Outcome Outcome `json:"outcome"`
	Error   string  `json:"error"`

	DetectedAt time.Time `json:"detected_at"`
}

func newRecordModel(draft *RecordDraft) *recordModel {
	if draft == nil {
		return nil
	}

	return &recordModel{
		BaseEntity:     storage.NewBaseEntity(),
		Target:         draft.Target,
		OldFingerprint: draft.OldFingerprint,
		NewFingerprint: draft.NewFingerprint,
		Files:          draft.Files,
		CommitHash:     draft.CommitHash,
		Outcome:        draft.Outcome,
		Error:          draft.Error,
		DetectedAt:     draft.DetectedAt,
	}
}

func newRecord(model *recordModel) *Record {
	if model == nil {
		return nil
	}

	return &Record{
		RecordDraft: RecordDraft{
			Target:         model.Target,
			OldFingerprint: model.OldFingerprint,
			NewFingerprint: model.NewFingerprint,
			Files:          model.Files,
			CommitHash:     model.CommitHash,
			Outcome:        model.Outcome,
			Error:          model.Error,
			DetectedAt:     model.DetectedAt,
		},
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
	}
}
