package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nadocloud/nadoquest/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, namespace string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM client_state WHERE namespace = ?`, namespace).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state[%s]: %w", namespace, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, namespace string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO client_state (namespace, value) VALUES (?, ?)
		ON CONFLICT(namespace) DO UPDATE SET value = excluded.value
	`, namespace, value)
	if err != nil {
		return fmt.Errorf("failed to set state[%s]: %w", namespace, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, namespace string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM client_state WHERE namespace = ?`, namespace)
	if err != nil {
		return fmt.Errorf("failed to delete state[%s]: %w", namespace, err)
	}
	return nil
}

// Reset removes the given namespaces in a single transaction. Used by the
// CLI "reset" command to wipe local data consistently.
func Reset(ctx context.Context, db *sql.DB, namespaces ...string) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		for _, ns := range namespaces {
			if err := repo.Delete(ctx, ns); err != nil {
				return err
			}
		}
		return nil
	})
}
