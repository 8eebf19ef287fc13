// Package catalog — Badger-backed pattern store.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"

	"github.com/lampwright/lampcycle/pathio"
)

// ErrNotFound is returned by Get when no record exists under the given id.
var ErrNotFound = errors.New("catalog: record not found")

// Store is an open pattern catalog. Safe for concurrent use; Badger
// provides the transaction isolation.
type Store struct {
	db *badger.DB
}

// Open opens the catalog rooted at dir, creating it if needed. An empty
// dir opens a fully in-memory store that vanishes on Close. Badger's own
// logger is disabled; the caller decides what to log.
func Open(dir string) (*Store, error) {
	dbOpts := badger.DefaultOptions(dir)
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false
	if dir == "" {
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", dir, err)
	}

	return &Store{db: db}, nil
}

// Put stores the record under a fresh UUID and returns that id.
func (s *Store) Put(rec pathio.Record) (string, error) {
	buf, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("catalog: marshal record: %w", err)
	}

	id := uuid.NewString()
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(id), buf)
	})
	if err != nil {
		return "", fmt.Errorf("catalog: put %s: %w", id, err)
	}

	return id, nil
}

// Get loads the record stored under id. A missing id reports ErrNotFound.
func (s *Store) Get(id string) (pathio.Record, error) {
	var rec pathio.Record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(id))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return pathio.Record{}, fmt.Errorf("catalog: id %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return pathio.Record{}, fmt.Errorf("catalog: get %s: %w", id, err)
	}

	return rec, nil
}

// List returns every stored id in Badger key order. Values are not loaded.
func (s *Store) List() ([]string, error) {
	var ids []string

	err := s.db.View(func(txn *badger.Txn) error {
		itOpts := badger.DefaultIteratorOptions
		itOpts.PrefetchValues = false

		it := txn.NewIterator(itOpts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			ids = append(ids, string(it.Item().KeyCopy(nil)))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}

	return ids, nil
}

// Close releases the underlying database. The Store is unusable afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}
