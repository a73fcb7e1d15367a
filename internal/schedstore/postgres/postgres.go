// Package postgres implements schedstore.Store using PostgreSQL via pgx.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists schedules in PostgreSQL.
type PGStore struct {
	db *pgxpool.Pool
}

// New creates a PGStore backed by the given pgx connection pool.
func New(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}
