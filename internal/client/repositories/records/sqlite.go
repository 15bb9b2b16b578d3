package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authmaster/internal/dbx"
)

// SQLiteRepository stores records in the `records` table. It works on a
// *sql.DB or inside a caller's *sql.Tx.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set record[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete record[%s]: %w", key, err)
	}
	return nil
}

// Update runs the read and the write in one transaction. When the repository
// already wraps a transaction, that transaction is used as is.
func (r *SQLiteRepository) Update(ctx context.Context, key string, fn UpdateFunc) error {
	db, ok := r.db.(*sql.DB)
	if !ok {
		return update(ctx, r, key, fn)
	}

	var fnErr error
	tracked := func(current []byte) ([]byte, error) {
		next, err := fn(current)
		fnErr = err
		return next, err
	}

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return update(ctx, NewSQLiteRepository(tx), key, tracked)
	})
	if err != nil && fnErr == nil {
		return fmt.Errorf("failed to update record[%s]: %w", key, err)
	}
	return err
}

func update(ctx context.Context, r *SQLiteRepository, key string, fn UpdateFunc) error {
	current, err := r.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, next)
}
