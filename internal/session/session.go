package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/TWRT/taskboard/internal/client"
	"github.com/TWRT/taskboard/internal/models"
)

// Storage keys, shared with any other client of the same storage.
const (
	TokenKey = "authToken"
	UserKey  = "usuarioAtual"
)

type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetMany(ctx context.Context, values map[string]string) error
	Remove(ctx context.Context, keys ...string) error
}

// Manager holds the authenticated/unauthenticated state. It moves to
// authenticated on Login and back on Logout or Clear (401).
type Manager struct {
	storage Storage
	auth    client.AuthProvider
	logger  *slog.Logger

	mu      sync.RWMutex
	current *models.Session
}

func NewManager(storage Storage, auth client.AuthProvider, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		storage: storage,
		auth:    auth,
		logger:  logger,
	}
}

// SetAuth breaks the construction cycle between the manager and the API
// client, whose middleware reads the manager's token.
func (m *Manager) SetAuth(auth client.AuthProvider) {
	m.auth = auth
}

// Restore resolves the initial state from storage. A token and a parseable
// user must both be present; a user that fails to parse clears storage.
func (m *Manager) Restore(ctx context.Context) error {
	token, hasToken, err := m.storage.Get(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	rawUser, hasUser, err := m.storage.Get(ctx, UserKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if !hasToken || !hasUser || token == "" {
		m.set(nil)
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		m.logger.Error("Erro ao recuperar usuário salvo", "error", err)
		m.set(nil)
		if err := m.storage.Remove(ctx, UserKey, TokenKey); err != nil {
			return fmt.Errorf("clear invalid session: %w", err)
		}
		return nil
	}

	m.set(&models.Session{Token: token, User: user})
	return nil
}

// Login persists token and user only after the API accepted the credentials.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	resp, err := m.auth.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	rawUser, err := json.Marshal(resp.User)
	if err != nil {
		return nil, fmt.Errorf("marshal user: %w", err)
	}
	if err := m.storage.SetMany(ctx, map[string]string{
		TokenKey: resp.Token,
		UserKey:  string(rawUser),
	}); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	m.set(&models.Session{Token: resp.Token, User: resp.User})
	user := resp.User
	return &user, nil
}

func (m *Manager) Logout(ctx context.Context) error {
	return m.Clear(ctx)
}

// Clear drops the session from memory and storage.
func (m *Manager) Clear(ctx context.Context) error {
	m.set(nil)
	if err := m.storage.Remove(ctx, TokenKey, UserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}

// CurrentUser returns nil when logged out.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	user := m.current.User
	return &user
}

func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

func (m *Manager) set(s *models.Session) {
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
}
