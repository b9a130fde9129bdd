package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/TWRT/taskboard/internal/client/taskapi"
)

// DefaultAddr keeps the server on loopback: whoever reaches it acts as the
// logged-in user.
const DefaultAddr = "127.0.0.1:3000"

type Config struct {
	APIBaseUrl  string
	Addr        string
	DBPath      string
	TokenScheme string
	LogLevel    slog.Level
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Erro ao carregar .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		APIBaseUrl:  valueOr(getenv("TASKBOARD_API_URL"), taskapi.DefaultBaseUrl),
		Addr:        valueOr(getenv("TASKBOARD_ADDR"), DefaultAddr),
		DBPath:      valueOr(getenv("TASKBOARD_DB"), "./taskboard.db"),
		TokenScheme: valueOr(getenv("TASKBOARD_TOKEN_SCHEME"), "Token"),
	}

	u, err := url.Parse(cfg.APIBaseUrl)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid TASKBOARD_API_URL %q", cfg.APIBaseUrl)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(valueOr(getenv("TASKBOARD_LOG_LEVEL"), "info"))); err != nil {
		return nil, fmt.Errorf("invalid TASKBOARD_LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

func valueOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}
