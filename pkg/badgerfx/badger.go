package badgerfx

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Config holds the configuration for the BadgerDB store.
type Config struct {
	// Dir is the BadgerDB data directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps the whole store in memory. Intended for tests.
	InMemory bool
}

func (c Config) Build() badger.Options {
	if c.InMemory {
		return badger.DefaultOptions("").WithInMemory(true)
	}

	return badger.DefaultOptions(c.Dir)
}

func New(config Config, logger *zapLogger) (*badger.DB, error) {
	opts := config.Build().
		WithLogger(logger)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}

	return db, nil
}
