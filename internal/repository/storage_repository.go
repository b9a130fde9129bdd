package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// StorageRepository is the client's "local storage": a flat string map
// persisted across restarts.
type StorageRepository struct {
	db *sql.DB
}

func NewStorageRepository(db *sql.DB) *StorageRepository {
	return &StorageRepository{db: db}
}

// Get returns ok == false when the key is absent.
func (r *StorageRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM local_storage WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get storage key %s: %w", key, err)
	}
	return value, true, nil
}

func (r *StorageRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO local_storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set storage key %s: %w", key, err)
	}
	return nil
}

func (r *StorageRepository) SetMany(ctx context.Context, values map[string]string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin storage tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO local_storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	for key, value := range values {
		if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
			return fmt.Errorf("set storage key %s: %w", key, err)
		}
	}
	return tx.Commit()
}

func (r *StorageRepository) Remove(ctx context.Context, keys ...string) error {
	query := `DELETE FROM local_storage WHERE key = ?`
	for _, key := range keys {
		if _, err := r.db.ExecContext(ctx, query, key); err != nil {
			return fmt.Errorf("remove storage key %s: %w", key, err)
		}
	}
	return nil
}
