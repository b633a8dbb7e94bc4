package history

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	draft := &RecordDraft{
		Target:         "docs",
		OldFingerprint: "aaa",
		NewFingerprint: "bbb",
		Files:          []string{"docs/a.txt"},
		CommitHash:     "deadbeef",
		Outcome:        OutcomeCompleted,
		DetectedAt:     time.Now().UTC(),
	}

	created, err := repo.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	if got.Outcome != OutcomeCompleted {
		t.Errorf("expected outcome %q, got %q", OutcomeCompleted, got.Outcome)
	}
	if got.NewFingerprint != "bbb" {
		t.Errorf("expected fingerprint bbb, got %q", got.NewFingerprint)
	}
	if len(got.Files) != 1 || got.Files[0] != "docs/a.txt" {
		t.Errorf("unexpected files %v", got.Files)
	}
}

func TestRepository_ListNewestFirst(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	outcomes := []Outcome{OutcomeStageFailed, OutcomePushFailed, OutcomeCompleted}
	for _, outcome := range outcomes {
		_, err := repo.Create(context.Background(), &RecordDraft{
			Target:  "docs",
			Outcome: outcome,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		// UUIDv7 has millisecond precision; keep creation order distinct.
		time.Sleep(2 * time.Millisecond)
	}

	records, err := repo.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected limit of 2 records, got %d", len(records))
	}
	if records[0].Outcome != OutcomeCompleted {
		t.Errorf("expected newest record first, got %q", records[0].Outcome)
	}
	if records[1].Outcome != OutcomePushFailed {
		t.Errorf("expected second newest record, got %q", records[1].Outcome)
	}
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	record, err := repo.Create(context.Background(), &RecordDraft{Target: "docs"})
	if err != nil {
		t.Fatal(err)
	}

	// Any other ID must not resolve.
	other := record.ID
	other[0] ^= 0xFF
	if _, err := repo.GetByID(context.Background(), other); err == nil {
		t.Fatal("expected lookup of unknown ID to fail")
	}
}
