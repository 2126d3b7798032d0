package postgres

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slotserve/internal/core/port"
)

// Store implements port.Store using pgxpool for PostgreSQL. Cross-entity
// references are plain identifier columns without foreign keys: a missing
// referent is a first-class read-time outcome, never a constraint error.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a new store instance.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// itoa names the next positional placeholder when building filtered
// queries with appended args.
func itoa(n int) string {
	return strconv.Itoa(n)
}

// wrap maps driver errors onto the port taxonomy. Row absence becomes
// ErrNotFound; anything else is a store availability problem.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrNotFound
	}
	return fmt.Errorf("%s: %w: %w", op, port.ErrStoreUnavailable, err)
}
