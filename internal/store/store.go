// Package store implements PostgreSQL persistence for songs, prompter
// settings, and accounts.
//
// Row-level authorization is enforced here, not in handlers: all song and
// settings operations hang off OwnedStore, a guard type scoped to one account
// identity. Every method checks the owner predicate itself, so no new code
// path can reach another account's rows. Operations against a row that exists
// but belongs to a different owner fail with core.ErrUnauthorized - an
// outright denial, never an empty result.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/candeia/chants/internal/core"
)

// Store wraps the connection pool and produces owner-scoped views.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store on top of an existing pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Ensure creates the tables, constraints, and indexes if they do not exist.
func (s *Store) Ensure(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// ForOwner returns a repository scoped to the given account identity. The
// zero UUID represents an unauthenticated caller; every operation on such a
// scope is denied.
func (s *Store) ForOwner(owner uuid.UUID) *OwnedStore {
	return &OwnedStore{pool: s.pool, owner: owner}
}

// OwnedStore is the row-level security guard: a repository view that only
// ever returns rows proven to belong to the owner it was created for.
type OwnedStore struct {
	pool  *pgxpool.Pool
	owner uuid.UUID
}

// Owner returns the identity this view is scoped to.
func (o *OwnedStore) Owner() uuid.UUID {
	return o.owner
}

// guard rejects unauthenticated scopes before any query runs.
func (o *OwnedStore) guard() error {
	if o.owner == uuid.Nil {
		return core.ErrUnauthorized
	}
	return nil
}

// toPgText maps an optional string to a nullable column value. The value is
// stored verbatim: lyrics legitimately carry leading and trailing newlines
// and must survive an export/import round trip byte-for-byte.
func toPgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}
