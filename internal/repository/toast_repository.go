package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

type Toast struct {
	ID        string
	Level     ToastLevel
	Message   string
	CreatedAt time.Time
}

type ToastRepository struct {
	db *sql.DB
}

func NewToastRepository(db *sql.DB) *ToastRepository {
	return &ToastRepository{db: db}
}

func (r *ToastRepository) Create(ctx context.Context, toast *Toast) error {
	query := `INSERT INTO toasts (id, level, message) VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, toast.ID, toast.Level, toast.Message)
	if err != nil {
		return fmt.Errorf("create toast: %w", err)
	}
	return nil
}

// Drain returns the pending toasts oldest first and removes them.
func (r *ToastRepository) Drain(ctx context.Context) ([]Toast, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin toast tx: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT id, level, message, created_at FROM toasts ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("get toasts: %w", err)
	}

	var toasts []Toast
	for rows.Next() {
		var t Toast
		if err := rows.Scan(&t.ID, &t.Level, &t.Message, &t.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan toast: %w", err)
		}
		toasts = append(toasts, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate toasts: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM toasts`); err != nil {
		return nil, fmt.Errorf("delete toasts: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit toasts: %w", err)
	}
	return toasts, nil
}
