package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TWRT/taskboard/internal/repository"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestToaster(t *testing.T) *Toaster {
	t.Helper()
	db, err := repository.InitDB(filepath.Join(t.TempDir(), "taskboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	toaster, err := NewToaster(repository.NewToastRepository(db), discard)
	require.NoError(t, err)
	return toaster
}

func TestToaster_QueueAndDrain(t *testing.T) {
	ctx := context.Background()
	toaster := newTestToaster(t)

	toaster.Success(ctx, "Projeto criado com sucesso!")
	toaster.Error(ctx, "Não encontrado.")

	toasts := toaster.Drain(ctx)
	require.Len(t, toasts, 2)
	assert.Equal(t, repository.ToastSuccess, toasts[0].Level)
	assert.Equal(t, "Projeto criado com sucesso!", toasts[0].Message)
	assert.Equal(t, repository.ToastError, toasts[1].Level)
	assert.Len(t, toasts[0].ID, 12)
	assert.NotEqual(t, toasts[0].ID, toasts[1].ID)

	assert.Empty(t, toaster.Drain(ctx))
}

func TestToaster_CanceledContextStillRecords(t *testing.T) {
	toaster := newTestToaster(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	toaster.Error(ctx, "Erro na requisição")

	toasts := toaster.Drain(context.Background())
	require.Len(t, toasts, 1)
	assert.Equal(t, "Erro na requisição", toasts[0].Message)
}

type brokenStore struct{}

func (brokenStore) Create(ctx context.Context, toast *repository.Toast) error {
	return errors.New("disk full")
}

func (brokenStore) Drain(ctx context.Context) ([]repository.Toast, error) {
	return nil, errors.New("disk full")
}

func TestToaster_StoreErrorsAreSwallowed(t *testing.T) {
	toaster, err := NewToaster(brokenStore{}, discard)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		toaster.Error(context.Background(), "x")
	})
	assert.Nil(t, toaster.Drain(context.Background()))
}
