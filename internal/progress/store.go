// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package progress

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	json "github.com/goccy/go-json"

	"github.com/ludotheca/ludotheca/internal/logging"
	"github.com/ludotheca/ludotheca/internal/metrics"
)

// storageKey is the single BadgerDB key holding the serialized progress map.
// The whole map is re-serialized under this key on every mutation; there is
// no per-item key scheme and no write batching.
const storageKey = "progress:v1"

// StoreConfig configures the progress store's BadgerDB instance.
type StoreConfig struct {
	// Path is the on-disk database directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory. Used by tests.
	InMemory bool

	// SyncWrites makes every commit fsync before returning.
	SyncWrites bool
}

// Store persists the progress map in BadgerDB under a single key.
//
// Mutations go through Apply, which runs load, transition and save inside
// one Update transaction, so a record change and its persistence are atomic
// with respect to any observer.
type Store struct {
	db *badger.DB
}

// OpenStore opens (or creates) the BadgerDB database for progress state.
func OpenStore(cfg StoreConfig) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, fmt.Errorf("progress store path not configured")
	}

	opts := badger.DefaultOptions(cfg.Path)
	opts.InMemory = cfg.InMemory
	opts.SyncWrites = cfg.SyncWrites

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the persisted progress map. A missing key yields an empty
// map; a corrupt value is treated as no prior progress, logged and never
// surfaced to the caller.
func (s *Store) Load() (Map, error) {
	var m Map

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(storageKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			m = decodeMap(val)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	if m == nil {
		m = make(Map)
	}
	return m, nil
}

// Apply runs a transition for one item id inside a single transaction:
// read the map, apply the transition, prune the entry if it became zero,
// and write the full map back. It returns the item's new record and the
// complete post-mutation map.
func (s *Store) Apply(id int, t Transition) (Record, Map, error) {
	var (
		record Record
		after  Map
	)

	err := s.db.Update(func(txn *badger.Txn) error {
		m, err := loadTxn(txn)
		if err != nil {
			return err
		}

		record = t(m.Get(id))
		m.Set(id, record)

		if err := saveTxn(txn, m); err != nil {
			return err
		}
		after = m
		return nil
	})
	if err != nil {
		return Record{}, nil, fmt.Errorf("apply progress transition: %w", err)
	}

	return record, after, nil
}

// Replace overwrites the entire progress map. Zero records are pruned so the
// persisted form stays canonical. Used by the import operation.
func (s *Store) Replace(m Map) (Map, error) {
	canonical := make(Map, len(m))
	for id, r := range m {
		canonical.Set(id, r)
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return saveTxn(txn, canonical)
	})
	if err != nil {
		return nil, fmt.Errorf("replace progress: %w", err)
	}
	return canonical, nil
}

// loadTxn reads and decodes the map inside an open transaction.
func loadTxn(txn *badger.Txn) (Map, error) {
	item, err := txn.Get([]byte(storageKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return make(Map), nil
	}
	if err != nil {
		return nil, err
	}

	var m Map
	if err := item.Value(func(val []byte) error {
		m = decodeMap(val)
		return nil
	}); err != nil {
		return nil, err
	}
	return m, nil
}

// saveTxn serializes the full map and writes it under the storage key.
func saveTxn(txn *badger.Txn, m Map) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	return txn.Set([]byte(storageKey), data)
}

// decodeMap unmarshals a persisted value, recovering from corruption by
// starting over with an empty map.
func decodeMap(val []byte) Map {
	var m Map
	if err := json.Unmarshal(val, &m); err != nil {
		logging.Warn().Err(err).Msg("Corrupt progress state, starting empty")
		metrics.StoreCorruptRecoveries.Inc()
		return make(Map)
	}
	if m == nil {
		m = make(Map)
	}
	return m
}
