// Package inmemdb provides an in-memory record store backend for tests
// and local development.
package inmemdb

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/classtrack/classtrack/storage/record"
)

type table struct {
	rows  map[string]record.Record
	order []string // insertion order; List is deterministic
}

type DB struct {
	mutex  sync.RWMutex
	tables map[string]*table
}

var _ record.Store = (*DB)(nil)

func Open() *DB {
	return &DB{tables: make(map[string]*table)}
}

// table lazily creates the named table; callers must hold the write lock.
func (db *DB) table(name string) *table {
	t, ok := db.tables[name]
	if !ok {
		t = &table{rows: make(map[string]record.Record)}
		db.tables[name] = t
	}
	return t
}

// lookup is the read-lock-safe counterpart of table; it never mutates db.tables.
func (db *DB) lookup(name string) (*table, bool) {
	t, ok := db.tables[name]
	return t, ok
}

// copyRecord guards callers from mutating stored rows and vice versa.
func copyRecord(rec record.Record) record.Record {
	out := make(record.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

func (db *DB) List(ctx context.Context, tableName string) ([]record.Record, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	t, ok := db.lookup(tableName)
	if !ok {
		return []record.Record{}, nil
	}
	recs := make([]record.Record, 0, len(t.order))
	for _, id := range t.order {
		recs = append(recs, copyRecord(t.rows[id]))
	}
	return recs, nil
}

func (db *DB) Get(ctx context.Context, tableName, id string) (record.Record, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	t, ok := db.lookup(tableName)
	if !ok {
		return nil, record.ErrNotFound
	}
	if rec, ok := t.rows[id]; ok {
		return copyRecord(rec), nil
	}
	return nil, record.ErrNotFound
}

func (db *DB) Create(ctx context.Context, tableName string, rec record.Record) (record.Record, error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	stored := copyRecord(rec)
	stored["id"] = uuid.New().String()

	t := db.table(tableName)
	t.rows[stored["id"].(string)] = stored
	t.order = append(t.order, stored["id"].(string))
	return copyRecord(stored), nil
}

func (db *DB) Update(ctx context.Context, tableName, id string, rec record.Record) (record.Record, error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	stored, ok := db.table(tableName).rows[id]
	if !ok {
		return nil, record.ErrNotFound
	}
	for k, v := range rec {
		if k == "id" {
			continue
		}
		stored[k] = v
	}
	return copyRecord(stored), nil
}

func (db *DB) Delete(ctx context.Context, tableName, id string) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	t := db.table(tableName)
	if _, ok := t.rows[id]; !ok {
		return record.ErrNotFound
	}
	delete(t.rows, id)
	for i, other := range t.order {
		if other == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}
