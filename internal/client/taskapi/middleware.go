package taskapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// TokenSource yields the stored session token, or "" when logged out.
type TokenSource interface {
	Token() string
}

// SessionClearer drops the stored session.
type SessionClearer interface {
	Clear(ctx context.Context) error
}

// Notifier surfaces an error message to the user.
type Notifier interface {
	Error(ctx context.Context, message string)
}

func checkStatus(next Doer) Doer {
	return func(req *http.Request) (*http.Response, error) {
		resp, err := next(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			body = nil
		}
		return nil, newAPIError(req, resp.StatusCode, body)
	}
}

func WithJSON() Middleware {
	return func(next Doer) Doer {
		return func(req *http.Request) (*http.Response, error) {
			req.Header.Set("Accept", "application/json")
			if req.Body != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			return next(req)
		}
	}
}

func WithRequestID() Middleware {
	return func(next Doer) Doer {
		return func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("X-Request-ID") == "" {
				req.Header.Set("X-Request-ID", uuid.NewString())
			}
			return next(req)
		}
	}
}

// WithToken sets "Authorization: <scheme> <token>" when a token is stored.
// Expired tokens are not refreshed.
func WithToken(src TokenSource, scheme string) Middleware {
	if scheme == "" {
		scheme = "Token"
	}
	return func(next Doer) Doer {
		return func(req *http.Request) (*http.Response, error) {
			if token := src.Token(); token != "" {
				req.Header.Set("Authorization", scheme+" "+token)
			}
			return next(req)
		}
	}
}

func WithLogging(logger *slog.Logger) Middleware {
	return func(next Doer) Doer {
		return func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next(req)
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"request_id", req.Header.Get("X-Request-ID"),
				"duration", time.Since(start),
			}

			var apiErr *APIError
			switch {
			case errors.As(err, &apiErr):
				logger.Error("Erro na API", append(attrs, "status", apiErr.StatusCode)...)
			case err != nil:
				logger.Error("Erro na API", append(attrs, "error", err)...)
			default:
				logger.Debug("api call", append(attrs, "status", resp.StatusCode)...)
			}
			return resp, err
		}
	}
}

// OnUnauthorized clears the session on any 401, whatever endpoint produced it.
// The error is passed on untouched; callers redirect to login.
func OnUnauthorized(sessions SessionClearer, logger *slog.Logger) Middleware {
	return func(next Doer) Doer {
		return func(req *http.Request) (*http.Response, error) {
			resp, err := next(req)
			if errors.Is(err, ErrUnauthorized) {
				if clearErr := sessions.Clear(req.Context()); clearErr != nil {
					logger.Error("clear session after 401", "error", clearErr)
				}
			}
			return resp, err
		}
	}
}

// OnError notifies the user about every failure except 401 and re-raises it.
func OnError(n Notifier) Middleware {
	return func(next Doer) Doer {
		return func(req *http.Request) (*http.Response, error) {
			resp, err := next(req)
			if err != nil && !errors.Is(err, ErrUnauthorized) {
				n.Error(req.Context(), UserMessage(err))
			}
			return resp, err
		}
	}
}
