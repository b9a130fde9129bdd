package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/TWRT/taskboard/internal/client/taskapi"
	"github.com/TWRT/taskboard/internal/models"
	"github.com/TWRT/taskboard/internal/repository"
	"github.com/TWRT/taskboard/internal/service"
)

type SessionState interface {
	IsAuthenticated() bool
	CurrentUser() *models.User
}

type Toaster interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
	Drain(ctx context.Context) []repository.Toast
}

// Base carries what every page handler needs.
type Base struct {
	Sessions SessionState
	Toaster  Toaster
	Renderer *Renderer
	Logger   *slog.Logger
}

func (b *Base) render(w http.ResponseWriter, r *http.Request, page, title, active string, data any) {
	pd := pageData{
		Title:  title,
		Active: active,
		User:   b.Sessions.CurrentUser(),
		Toasts: b.Toaster.Drain(r.Context()),
		Data:   data,
	}
	if err := b.Renderer.Render(w, http.StatusOK, page, pd); err != nil {
		b.Logger.Error("render page", "page", page, "error", err)
		http.Error(w, "Erro ao renderizar a página", http.StatusInternalServerError)
	}
}

// unauthorized sends the browser to the login page when err is a 401. The
// session was already cleared by the API client.
func (b *Base) unauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, taskapi.ErrUnauthorized) {
		return false
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

// afterMutation finishes a form post: toast on success, then back to the list,
// which fetches everything again.
func (b *Base) afterMutation(w http.ResponseWriter, r *http.Request, err error, success, back string) {
	switch {
	case err == nil:
		b.Toaster.Success(r.Context(), success)
	case b.unauthorized(w, r, err):
		return
	case errors.Is(err, service.ErrRequiredFields):
		b.Toaster.Error(r.Context(), service.ErrRequiredFields.Error())
	default:
		// the API client already raised a toast for this one
		b.Logger.Error("operation failed", "path", r.URL.Path, "error", err)
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func formInt(r *http.Request, key string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(r.FormValue(key)), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func queryInt(r *http.Request, key string) int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// returnPath honours a local return_to form field, falling back otherwise.
func returnPath(r *http.Request, fallback string) string {
	p := r.FormValue("return_to")
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return fallback
	}
	return p
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}
