package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/TWRT/taskboard/internal/models"
	"github.com/TWRT/taskboard/internal/repository"
)

//go:embed templates/*.html
var templateFS embed.FS

type pageData struct {
	Title  string
	Active string
	User   *models.User
	Toasts []repository.Toast
	Data   any
}

// Renderer holds one parsed template set per page, each sharing layout.html.
type Renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"ago": func(t models.Timestamp) string {
		if t.IsZero() {
			return ""
		}
		return humanize.Time(t.Time)
	},
	"agoPtr": func(t *models.Timestamp) string {
		if t == nil || t.IsZero() {
			return ""
		}
		return humanize.Time(t.Time)
	},
	"date": func(t models.Timestamp) string {
		if t.IsZero() {
			return "-"
		}
		return t.Local().Format("02/01/2006 15:04")
	},
	"count": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"statuses": func() []models.TaskStatus {
		return models.TaskStatuses
	},
	"statusClass": func(s models.TaskStatus) string {
		return strings.ReplaceAll(string(s), "í", "i")
	},
	"assigneeID": func(u *models.User) int64 {
		if u == nil {
			return 0
		}
		return u.ID
	},
	"ownerSelected": func(input models.ProjectInput, id int64) bool {
		return input.OwnerID != nil && *input.OwnerID == id
	},
}

func NewRenderer() (*Renderer, error) {
	entries, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, entry := range entries {
		name := path.Base(entry)
		if name == "layout.html" {
			continue
		}
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", entry)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[strings.TrimSuffix(name, ".html")] = t
	}
	return r, nil
}

func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data pageData) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %s", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
