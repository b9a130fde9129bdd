package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.APIBaseUrl)
	assert.Equal(t, "127.0.0.1:3000", cfg.Addr)
	assert.Equal(t, "./taskboard.db", cfg.DBPath)
	assert.Equal(t, "Token", cfg.TokenScheme)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"TASKBOARD_API_URL":      "https://tarefas.example.com/api",
		"TASKBOARD_ADDR":         " :8080 ",
		"TASKBOARD_DB":           "/tmp/x.db",
		"TASKBOARD_TOKEN_SCHEME": "Bearer",
		"TASKBOARD_LOG_LEVEL":    "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://tarefas.example.com/api", cfg.APIBaseUrl)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "Bearer", cfg.TokenScheme)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestFromEnv_Invalid(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{"TASKBOARD_API_URL": "/api"}))
	assert.Error(t, err)

	_, err = FromEnv(envOf(map[string]string{"TASKBOARD_LOG_LEVEL": "verbose"}))
	assert.Error(t, err)
}
