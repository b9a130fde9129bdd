package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "taskboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInitDB_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskboard.db")

	db, err := InitDB(path)
	require.NoError(t, err)
	require.NoError(t, NewStorageRepository(db).Set(context.Background(), "authToken", "abc"))
	require.NoError(t, db.Close())

	db, err = InitDB(path)
	require.NoError(t, err)
	defer db.Close()

	value, ok, err := NewStorageRepository(db).Get(context.Background(), "authToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)
}

func TestStorageRepository_GetMissing(t *testing.T) {
	repo := NewStorageRepository(newTestDB(t))

	value, ok, err := repo.Get(context.Background(), "authToken")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestStorageRepository_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewStorageRepository(newTestDB(t))

	require.NoError(t, repo.Set(ctx, "authToken", "one"))
	require.NoError(t, repo.Set(ctx, "authToken", "two"))

	value, ok, err := repo.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", value)
}

func TestStorageRepository_SetManyAndRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewStorageRepository(newTestDB(t))

	require.NoError(t, repo.SetMany(ctx, map[string]string{
		"authToken":    "abc",
		"usuarioAtual": `{"id":1}`,
		"other":        "kept",
	}))

	require.NoError(t, repo.Remove(ctx, "authToken", "usuarioAtual", "missing"))

	_, ok, err := repo.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = repo.Get(ctx, "usuarioAtual")
	require.NoError(t, err)
	assert.False(t, ok)

	value, ok, err := repo.Get(ctx, "other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "kept", value)
}

func TestToastRepository_DrainOldestFirstAndEmpties(t *testing.T) {
	ctx := context.Background()
	repo := NewToastRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &Toast{ID: "b", Level: ToastError, Message: "Erro"}))
	require.NoError(t, repo.Create(ctx, &Toast{ID: "a", Level: ToastSuccess, Message: "Projeto criado com sucesso!"}))

	toasts, err := repo.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, toasts, 2)
	assert.Equal(t, "b", toasts[0].ID)
	assert.Equal(t, ToastError, toasts[0].Level)
	assert.Equal(t, "Projeto criado com sucesso!", toasts[1].Message)
	assert.False(t, toasts[1].CreatedAt.IsZero())

	toasts, err = repo.Drain(ctx)
	require.NoError(t, err)
	assert.Empty(t, toasts)
}
