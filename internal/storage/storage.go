package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const resultPrefix = "perft/"

// PerftResult is a stored node count for one position and depth.
type PerftResult struct {
	FEN        string        `json:"fen"`
	Depth      int           `json:"depth"`
	Nodes      uint64        `json:"nodes"`
	Elapsed    time.Duration `json:"elapsed"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in CacheDir.
func NewStorage() (*Storage, error) {
	dbDir, err := CacheDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open perft cache: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func resultKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("%s%02d/%s", resultPrefix, depth, fen))
}

// SaveResult stores r, replacing any result for the same FEN and depth.
func (s *Storage) SaveResult(r *PerftResult) error {
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}

	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(resultKey(r.FEN, r.Depth), data)
	})
}

// LoadResult returns the stored result for fen at depth. ok is false if
// nothing has been stored.
func (s *Storage) LoadResult(fen string, depth int) (r *PerftResult, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(resultKey(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		r = &PerftResult{}
		ok = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, r)
		})
	})
	if err != nil {
		return nil, false, err
	}
	return r, ok, nil
}

// Results returns all stored results ordered by depth, then FEN.
func (s *Storage) Results() ([]*PerftResult, error) {
	var results []*PerftResult

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(resultPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			r := &PerftResult{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, r)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", strings.TrimPrefix(string(it.Item().Key()), resultPrefix), err)
			}
			results = append(results, r)
		}
		return nil
	})

	return results, err
}

// Clear removes every stored result.
func (s *Storage) Clear() error {
	return s.db.DropPrefix([]byte(resultPrefix))
}
