// Package storage persists engine configuration and verified perft
// results in a BadgerDB key-value store.
package storage

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

const keyOptions = "options"

// perftKey builds the cache key for one position/depth pair.
func perftKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("perft/%s/%d", fen, depth))
}

// EngineOptions are the persisted search settings.
type EngineOptions struct {
	// TTEntries is the transposition table capacity in entries.
	TTEntries int `json:"tt_entries"`
	// MaxDepth bounds the iterative deepening loop.
	MaxDepth int `json:"max_depth"`
}

// DefaultOptions returns the settings used when nothing is stored.
func DefaultOptions() *EngineOptions {
	return &EngineOptions{
		TTEntries: 1 << 20,
		MaxDepth:  6,
	}
}

// Store wraps a badger database.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store under dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // badger's own logging is noise here

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveOptions persists the engine options.
func (s *Store) SaveOptions(opts *EngineOptions) error {
	data, err := json.Marshal(opts)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyOptions), data)
	})
}

// LoadOptions returns the stored engine options, or the defaults when
// none have been saved yet.
func (s *Store) LoadOptions() (*EngineOptions, error) {
	opts := DefaultOptions()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyOptions))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, opts)
		})
	})

	return opts, err
}

// PutPerft records a verified node count for a position and depth.
func (s *Store) PutPerft(fen string, depth int, nodes uint64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(fen, depth), []byte(strconv.FormatUint(nodes, 10)))
	})
}

// GetPerft returns the cached node count for a position and depth.
// The second result is false on a cache miss.
func (s *Store) GetPerft(fen string, depth int) (uint64, bool, error) {
	var nodes uint64
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			n, err := strconv.ParseUint(string(val), 10, 64)
			if err != nil {
				return fmt.Errorf("corrupt perft cache entry %q: %w", val, err)
			}
			nodes = n
			found = true
			return nil
		})
	})

	return nodes, found, err
}
