package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TWRT/taskboard/internal/models"
	"github.com/TWRT/taskboard/internal/repository"
)

type stubAuth struct {
	resp  *models.LoginResponse
	err   error
	calls int
}

func (a *stubAuth) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	a.calls++
	return a.resp, a.err
}

func newTestStorage(t *testing.T) *repository.StorageRepository {
	t.Helper()
	db, err := repository.InitDB(filepath.Join(t.TempDir(), "taskboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repository.NewStorageRepository(db)
}

func newTestManager(t *testing.T, auth *stubAuth) (*Manager, *repository.StorageRepository) {
	t.Helper()
	storage := newTestStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(storage, auth, logger), storage
}

func assertKeyMissing(t *testing.T, storage *repository.StorageRepository, key string) {
	t.Helper()
	_, ok, err := storage.Get(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, ok, "%s should not be stored", key)
}

func TestRestore_EmptyStorage(t *testing.T) {
	m, _ := newTestManager(t, &stubAuth{})

	require.NoError(t, m.Restore(context.Background()))
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.CurrentUser())
	assert.Empty(t, m.Token())
}

func TestRestore_ValidSession(t *testing.T) {
	ctx := context.Background()
	m, storage := newTestManager(t, &stubAuth{})
	require.NoError(t, storage.SetMany(ctx, map[string]string{
		TokenKey: "abc123",
		UserKey:  `{"id":4,"username":"ana","email":"ana@example.com","first_name":"Ana","last_name":"Souza"}`,
	}))

	require.NoError(t, m.Restore(ctx))
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "abc123", m.Token())
	require.NotNil(t, m.CurrentUser())
	assert.Equal(t, int64(4), m.CurrentUser().ID)
	assert.Equal(t, "Ana Souza", m.CurrentUser().FullName())
}

func TestRestore_TokenWithoutUser(t *testing.T) {
	ctx := context.Background()
	m, storage := newTestManager(t, &stubAuth{})
	require.NoError(t, storage.Set(ctx, TokenKey, "abc123"))

	require.NoError(t, m.Restore(ctx))
	assert.False(t, m.IsAuthenticated())
}

func TestRestore_MalformedUserClearsStorage(t *testing.T) {
	ctx := context.Background()
	m, storage := newTestManager(t, &stubAuth{})
	require.NoError(t, storage.SetMany(ctx, map[string]string{
		TokenKey: "abc123",
		UserKey:  `{not json`,
	}))

	require.NoError(t, m.Restore(ctx))
	assert.False(t, m.IsAuthenticated())
	assertKeyMissing(t, storage, TokenKey)
	assertKeyMissing(t, storage, UserKey)
}

func TestLogin_PersistsSession(t *testing.T) {
	ctx := context.Background()
	auth := &stubAuth{resp: &models.LoginResponse{
		Token: "tok",
		User:  models.User{ID: 1, Username: "ana"},
	}}
	m, storage := newTestManager(t, auth)

	user, err := m.Login(ctx, models.Credentials{Username: "ana", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "tok", m.Token())

	token, ok, err := storage.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", token)

	rawUser, ok, err := storage.Get(ctx, UserKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id":1,"username":"ana","email":"","first_name":"","last_name":""}`, rawUser)

	// a fresh manager over the same storage sees the same session
	restored := NewManager(storage, auth, nil)
	require.NoError(t, restored.Restore(ctx))
	assert.Equal(t, "ana", restored.CurrentUser().Username)
}

func TestLogin_FailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	auth := &stubAuth{err: errors.New("status 400")}
	m, storage := newTestManager(t, auth)

	user, err := m.Login(ctx, models.Credentials{Username: "ana", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, 1, auth.calls)
	assert.False(t, m.IsAuthenticated())
	assertKeyMissing(t, storage, TokenKey)
	assertKeyMissing(t, storage, UserKey)
}

func TestLogout_ClearsStateAndStorage(t *testing.T) {
	ctx := context.Background()
	auth := &stubAuth{resp: &models.LoginResponse{Token: "tok", User: models.User{ID: 1, Username: "ana"}}}
	m, storage := newTestManager(t, auth)
	require.NoError(t, storage.Set(ctx, "other", "kept"))

	_, err := m.Login(ctx, models.Credentials{Username: "ana", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx))
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.CurrentUser())
	assertKeyMissing(t, storage, TokenKey)
	assertKeyMissing(t, storage, UserKey)

	value, ok, err := storage.Get(ctx, "other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "kept", value)
}

func TestCurrentUser_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	auth := &stubAuth{resp: &models.LoginResponse{Token: "tok", User: models.User{ID: 1, Username: "ana"}}}
	m, _ := newTestManager(t, auth)
	_, err := m.Login(ctx, models.Credentials{Username: "ana", Password: "secret"})
	require.NoError(t, err)

	m.CurrentUser().Username = "changed"
	assert.Equal(t, "ana", m.CurrentUser().Username)
}
