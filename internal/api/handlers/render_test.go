package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TWRT/taskboard/internal/models"
	"github.com/TWRT/taskboard/internal/repository"
	"github.com/TWRT/taskboard/internal/service"
)

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, page := range []string{"login", "dashboard", "confirm", "projects", "project_detail", "tasks", "users"} {
		assert.Contains(t, r.pages, page)
	}
	assert.NotContains(t, r.pages, "layout")
}

func TestRender_LayoutNavAndToasts(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, "dashboard", pageData{
		Title:  "Dashboard",
		Active: "dashboard",
		User:   &models.User{ID: 1, Username: "ana"},
		Toasts: []repository.Toast{{ID: "t1", Level: repository.ToastSuccess, Message: "Dados carregados com sucesso!"}},
		Data:   &service.DashboardStats{TotalTasks: 1200},
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, `class="active">Dashboard</a>`)
	assert.Contains(t, body, `<div class="toast success" id="toast-t1">Dados carregados com sucesso!</div>`)
	assert.Contains(t, body, `id="total-tarefas">1,200<`)
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	assert.Error(t, r.Render(rec, http.StatusOK, "missing", pageData{}))
}

func TestRender_TasksPageEscapesContent(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	completed := models.Timestamp{Time: time.Now().Add(-time.Hour)}
	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, "tasks", pageData{
		User: &models.User{ID: 1, Username: "ana"},
		Data: tasksView{
			TasksPage: &service.TasksPage{
				Tasks: []models.Task{{
					ID:          9,
					Title:       "<script>x</script>",
					Status:      models.TaskStatusCompleted,
					CreatedAt:   models.Timestamp{Time: time.Now().Add(-2 * time.Hour)},
					CompletedAt: &completed,
				}},
			},
			ReturnTo: "/tasks",
		},
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.NotContains(t, body, "<script>x</script>")
	assert.Contains(t, body, `<option value="concluída" selected>Concluída</option>`)
	assert.NotContains(t, body, "/tasks/9/complete", "completed tasks have no complete button")
	assert.Contains(t, body, "1 hour ago")
}

func TestReturnPath(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"/tasks?user=2", "/tasks?user=2"},
		{"", "/tasks"},
		{"https://evil.example.com", "/tasks"},
		{"//evil.example.com", "/tasks"},
		{"/\\evil.example.com", "/tasks"},
	}

	for _, tt := range tests {
		form := url.Values{"return_to": {tt.value}}
		req := httptest.NewRequest(http.MethodPost, "/tasks/1/status", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.Equal(t, tt.want, returnPath(req, "/tasks"), tt.value)
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
