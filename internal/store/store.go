// Package store persists reference tables and quote history in SQLite.
package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store reads and writes the quoting tables.
type Store struct {
	db     *sql.DB
	now    func() time.Time
	newRef func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used to timestamp quotes.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a Store over an open, migrated database.
func New(db *sql.DB, opts ...Option) *Store {
	s := &Store{db: db, now: time.Now, newRef: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping checks that the database is reachable.
func (s *Store) Ping() error {
	return s.db.Ping()
}

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// nullable turns an optional patch field into a query argument; nil binds NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
