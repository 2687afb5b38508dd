package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"parkingslots/internal/db"
)

const undefinedTable = pq.ErrorCode("42P01")

// PostgresRepository keeps the encoded slot list as one row of a key-value table.
type PostgresRepository struct {
	DB  *sql.DB
	Key string
}

func NewPostgresRepository(db *sql.DB, key string) *PostgresRepository {
	if key == "" {
		key = DefaultKey
	}
	return &PostgresRepository{DB: db, Key: key}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("error creating kv_store table: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Load(ctx context.Context) ([]db.Slot, error) {
	var value string
	err := r.DB.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, r.Key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying slots for key %q: %w", r.Key, err)
	}
	return DecodeSlots([]byte(value))
}

func (r *PostgresRepository) Save(ctx context.Context, slots []db.Slot) error {
	data, err := EncodeSlots(slots)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			updated_at = NOW()`
	if _, err := r.DB.ExecContext(ctx, query, r.Key, string(data)); err != nil {
		return fmt.Errorf("error saving slots for key %q: %w", r.Key, err)
	}
	return nil
}
