package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TWRT/taskboard/internal/repository"
	nanoid "github.com/jaevor/go-nanoid"
)

type ToastStore interface {
	Create(ctx context.Context, toast *repository.Toast) error
	Drain(ctx context.Context) ([]repository.Toast, error)
}

// Toaster queues short notifications shown on the next rendered page.
type Toaster struct {
	store  ToastStore
	newID  func() string
	logger *slog.Logger
}

func NewToaster(store ToastStore, logger *slog.Logger) (*Toaster, error) {
	gen, err := nanoid.Standard(12)
	if err != nil {
		return nil, fmt.Errorf("toast id generator: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Toaster{store: store, newID: gen, logger: logger}, nil
}

func (t *Toaster) Success(ctx context.Context, message string) {
	t.push(ctx, repository.ToastSuccess, message)
}

func (t *Toaster) Error(ctx context.Context, message string) {
	t.push(ctx, repository.ToastError, message)
}

// Drain returns and forgets every queued toast. Storage errors yield none.
func (t *Toaster) Drain(ctx context.Context) []repository.Toast {
	toasts, err := t.store.Drain(ctx)
	if err != nil {
		t.logger.Error("drain toasts", "error", err)
		return nil
	}
	return toasts
}

func (t *Toaster) push(ctx context.Context, level repository.ToastLevel, message string) {
	toast := &repository.Toast{ID: t.newID(), Level: level, Message: message}
	// a toast must still be recorded when the request that raised it was canceled
	if err := t.store.Create(context.WithoutCancel(ctx), toast); err != nil {
		t.logger.Error("store toast", "level", level, "message", message, "error", err)
	}
}
