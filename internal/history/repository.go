package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	prefix = "cycle:"

	prefixByID = prefix + "id:"

	seekEnd = byte(0xFF)
)

type Repository struct {
	db *badger.DB
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// Create persists a new cycle record.
func (r *Repository) Create(_ context.Context, draft *RecordDraft) (*Record, error) {
	model := newRecordModel(draft)

	data, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cycle record: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(r.getByIDKey(model.ID), data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store cycle record: %w", err)
	}

	return newRecord(model), nil
}

// GetByID retrieves a single cycle record.
func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	var model recordModel

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(r.getByIDKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err != nil {
			return fmt.Errorf("failed to get cycle record: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &model)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get cycle record by ID: %w", err)
	}

	return newRecord(&model), nil
}

// List retrieves up to limit records, newest first. Record IDs are UUIDv7,
// so key order is creation order.
func (r *Repository) List(_ context.Context, limit int) ([]Record, error) {
	var records []Record

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true

		it := txn.NewIterator(options)
		defer it.Close()

		validPrefix := []byte(prefixByID)
		seekPrefix := append([]byte(prefixByID), seekEnd)

		for it.Seek(seekPrefix); it.ValidForPrefix(validPrefix); it.Next() {
			if limit > 0 && len(records) >= limit {
				break
			}

			var model recordModel
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &model)
			}); err != nil {
				return fmt.Errorf("failed to unmarshal cycle record: %w", err)
			}

			records = append(records, *newRecord(&model))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cycle records: %w", err)
	}

	return records, nil
}

func (r *Repository) getByIDKey(id uuid.UUID) []byte {
	return []byte(prefixByID + id.String())
}
