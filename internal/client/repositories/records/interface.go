// Package records is the device-local key/value medium the account store and
// the session manager persist their records in.
//
// Each record is an opaque byte value under a string key. Get on a missing key
// returns (nil, nil) and Delete of a missing key is a no-op, so callers can
// treat "absent" as a normal state rather than an error.
//
// Implementations:
//
//   - SQLiteRepository: the `records` table of the local SQLite database
//   - MemoryRepository: a process-local map, for tests and throwaway runs
//
// Neither implementation locks: the client drives storage from a single
// goroutine.
package records

import "context"

// UpdateFunc receives the current value of a record (nil if absent) and
// returns the value to store.
type UpdateFunc func(current []byte) ([]byte, error)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Update reads and rewrites one record atomically. If fn fails nothing
	// is written and fn's error is returned unchanged.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
