// Package fakeapi is a test double: an in-memory stand-in for the tarefas REST
// API, served through httptest. Only _test.go files import it; the binary
// never does.
package fakeapi

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/TWRT/taskboard/internal/models"
)

type userRecord struct {
	models.User
	password string
}

type projectRecord struct {
	id          int64
	name        string
	description string
	createdAt   time.Time
	ownerID     int64
}

type taskRecord struct {
	id          int64
	title       string
	description string
	status      models.TaskStatus
	createdAt   time.Time
	completedAt *time.Time
	projectID   int64
	assigneeID  *int64
}

// RecordedRequest is what the fake saw of one incoming call.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	ContentType   string
	RequestID     string
	Body          []byte
}

type Server struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]*userRecord
	projects map[int64]*projectRecord
	tasks    map[int64]*taskRecord
	tokens   map[string]int64
	requests []RecordedRequest
	paginate bool
	override http.HandlerFunc

	mux *http.ServeMux
}

func New() *Server {
	s := &Server{
		users:    make(map[int64]*userRecord),
		projects: make(map[int64]*projectRecord),
		tasks:    make(map[int64]*taskRecord),
		tokens:   make(map[string]int64),
		mux:      http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body := readBody(r)
	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
		RequestID:     r.Header.Get("X-Request-ID"),
		Body:          body,
	})
	override := s.override
	s.mu.Unlock()

	if override != nil {
		override(w, r)
		return
	}
	s.mux.ServeHTTP(w, r)
}

// SetPaginate wraps list responses in {"count", "next", "previous", "results"}.
func (s *Server) SetPaginate(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paginate = on
}

// SetOverride makes h answer every request in place of the fake. nil restores it.
func (s *Server) SetOverride(h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.override = h
}

func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// LastRequest returns the zero value when nothing was received.
func (s *Server) LastRequest() RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) AddUser(username, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(models.UserInput{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
	})
}

func (s *Server) AddProject(name, description string, ownerID int64) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &projectRecord{
		id:          s.id(),
		name:        name,
		description: description,
		createdAt:   time.Now().UTC(),
		ownerID:     ownerID,
	}
	s.projects[p.id] = p
	return s.projectLocked(p)
}

func (s *Server) AddTask(title string, projectID int64, status models.TaskStatus) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &taskRecord{
		id:        s.id(),
		title:     title,
		status:    status,
		createdAt: time.Now().UTC(),
		projectID: projectID,
	}
	s.tasks[t.id] = t
	return s.taskLocked(t)
}

// Token issues a token for the user as the login endpoint would.
func (s *Server) Token(userID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenLocked(userID)
}

// RevokeTokens makes every issued token invalid, so the next call gets a 401.
func (s *Server) RevokeTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]int64)
}

func (s *Server) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	projects := make([]models.Project, 0, len(s.projects))
	for _, id := range sortedKeys(s.projects) {
		projects = append(projects, s.projectLocked(s.projects[id]))
	}
	return projects
}

func (s *Server) Task(id int64) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return models.Task{}, false
	}
	return s.taskLocked(t), true
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/auth/login/{$}", s.login)

	s.mux.HandleFunc("GET /api/usuarios/{$}", s.authed(s.listUsers))
	s.mux.HandleFunc("POST /api/usuarios/{$}", s.createUser)
	s.mux.HandleFunc("GET /api/usuarios/{id}/{$}", s.authed(s.getUser))
	s.mux.HandleFunc("PUT /api/usuarios/{id}/{$}", s.authed(s.updateUser))
	s.mux.HandleFunc("DELETE /api/usuarios/{id}/{$}", s.authed(s.deleteUser))

	s.mux.HandleFunc("GET /api/projetos/{$}", s.authed(s.listProjects))
	s.mux.HandleFunc("POST /api/projetos/{$}", s.authed(s.createProject))
	s.mux.HandleFunc("GET /api/projetos/{id}/{$}", s.authed(s.getProject))
	s.mux.HandleFunc("PUT /api/projetos/{id}/{$}", s.authed(s.updateProject))
	s.mux.HandleFunc("DELETE /api/projetos/{id}/{$}", s.authed(s.deleteProject))
	s.mux.HandleFunc("GET /api/projetos/{id}/tarefas_do_projeto/{$}", s.authed(s.projectTasks))
	s.mux.HandleFunc("GET /api/projetos/{id}/resumo_progresso/{$}", s.authed(s.progressSummary))
	s.mux.HandleFunc("POST /api/projetos/{id}/atribuir_proprietario/{$}", s.authed(s.assignOwner))

	s.mux.HandleFunc("GET /api/tarefas/{$}", s.authed(s.listTasks))
	s.mux.HandleFunc("POST /api/tarefas/{$}", s.authed(s.createTask))
	s.mux.HandleFunc("GET /api/tarefas/tarefas_por_usuario/{$}", s.authed(s.tasksByUser))
	s.mux.HandleFunc("GET /api/tarefas/numero_tarefas_por_projeto/{$}", s.authed(s.countByProject))
	s.mux.HandleFunc("GET /api/tarefas/{id}/{$}", s.authed(s.getTask))
	s.mux.HandleFunc("PUT /api/tarefas/{id}/{$}", s.authed(s.updateTask))
	s.mux.HandleFunc("DELETE /api/tarefas/{id}/{$}", s.authed(s.deleteTask))
	s.mux.HandleFunc("POST /api/tarefas/{id}/marcar_concluida/{$}", s.authed(s.markComplete))
	s.mux.HandleFunc("POST /api/tarefas/{id}/atribuir_usuario/{$}", s.authed(s.assignUser))
	s.mux.HandleFunc("POST /api/tarefas/{id}/remover_usuario/{$}", s.authed(s.removeUser))
	s.mux.HandleFunc("POST /api/tarefas/{id}/mudar_status/{$}", s.authed(s.changeStatus))
}

type authedHandler func(w http.ResponseWriter, r *http.Request, userID int64)

func (s *Server) authed(h authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Token ")
		if !ok || token == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"detail": "As credenciais de autenticação não foram fornecidas.",
			})
			return
		}

		s.mu.Lock()
		userID, ok := s.tokens[token]
		s.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Token inválido."})
			return
		}
		h(w, r, userID)
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.Unmarshal(readBody(r), &creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON parse error"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == creds.Username && u.password == creds.Password {
			writeJSON(w, http.StatusOK, models.LoginResponse{Token: s.tokenLocked(u.ID), User: u.User})
			return
		}
	}
	writeJSON(w, http.StatusBadRequest, map[string][]string{
		"non_field_errors": {"Impossível fazer login com as credenciais fornecidas."},
	})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for _, id := range sortedKeys(s.users) {
		users = append(users, s.users[id].User)
	}
	s.writeList(w, users)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var input models.UserInput
	if err := json.Unmarshal(readBody(r), &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON parse error"})
		return
	}
	if input.Username == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"username": {"Este campo é obrigatório."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == input.Username {
			writeJSON(w, http.StatusBadRequest, map[string][]string{
				"username": {"Um usuário com este nome de usuário já existe."},
			})
			return
		}
	}
	writeJSON(w, http.StatusCreated, s.addUserLocked(input))
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[pathID(r)]
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, u.User)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request, _ int64) {
	var input models.UserInput
	if err := json.Unmarshal(readBody(r), &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON parse error"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[pathID(r)]
	if !ok {
		notFound(w)
		return
	}
	u.Username = input.Username
	u.Email = input.Email
	u.FirstName = input.FirstName
	u.LastName = input.LastName
	if input.Password != "" {
		u.password = input.Password
	}
	writeJSON(w, http.StatusOK, u.User)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := pathID(r)
	if _, ok := s.users[id]; !ok {
		notFound(w)
		return
	}
	delete(s.users, id)
	for pid, p := range s.projects {
		if p.ownerID == id {
			s.deleteProjectLocked(pid)
		}
	}
	for _, t := range s.tasks {
		if t.assigneeID != nil && *t.assigneeID == id {
			t.assigneeID = nil
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	projects := make([]models.Project, 0, len(s.projects))
	for _, id := range sortedKeys(s.projects) {
		projects = append(projects, s.projectLocked(s.projects[id]))
	}
	s.writeList(w, projects)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request, userID int64) {
	var input models.ProjectInput
	if err := json.Unmarshal(readBody(r), &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON parse error"})
		return
	}
	if input.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"nome": {"Este campo é obrigatório."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := userID
	if input.OwnerID != nil {
		if _, ok := s.users[*input.OwnerID]; ok {
			owner = *input.OwnerID
		}
	}
	p := &projectRecord{
		id:          s.id(),
		name:        input.Name,
		description: input.Description,
		createdAt:   time.Now().UTC(),
		ownerID:     owner,
	}
	s.projects[p.id] = p
	writeJSON(w, http.StatusCreated, s.projectLocked(p))
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[pathID(r)]
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, s.projectLocked(p))
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request, _ int64) {
	var input models.ProjectInput
	if err := json.Unmarshal(readBody(r), &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON parse error"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[pathID(r)]
	if !ok {
		notFound(w)
		return
	}
	p.name = input.Name
	p.description = input.Description
	writeJSON(w, http.StatusOK, s.projectLocked(p))
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := pathID(r)
	if _, ok := s.projects[id]; !ok {
		notFound(w)
		return
	}
	s.deleteProjectLocked(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) projectTasks(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := pathID(r)
	if _, ok := s.projects[id]; !ok {
		notFound(w)
		return
	}
	tasks := s.tasksLocked(func(t *taskRecord) bool { return t.projectID == id })
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) progressSummary(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := pathID(r)
	if _, ok := s.projects[id]; !ok {
		notFound(w)
		return
	}
	tasks := s.tasksLocked(func(t *taskRecord) bool { return t.projectID == id })
	counts := models.CountByStatus(tasks)
	writeJSON(w, http.StatusOK, models.ProgressSummary{
		Total:      len(tasks),
		Completed:  counts[models.TaskStatusCompleted],
		Pending:    counts[models.TaskStatusPending],
		InProgress: counts[models.TaskStatusInProgress],
	})
}

func (s *Server) assignOwner(w http.ResponseWriter, r *http.Request, _ int64) {
	var req struct {
		UserID int64 `json:"user_id"`
	}
	_ = json.Unmarshal(readBody(r), &req)

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[pathID(r)]
	if !ok {
		notFound(w)
		return
	}
	if _, ok := s.users[req.UserID]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Usuário não encontrado"})
		return
	}
	p.ownerID = req.UserID
	writeJSON(w, http.StatusOK, map[string]string{"status": "Proprietário atualizado"})
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeList(w, s.tasksLocked(func(*taskRecord) bool { return true }))
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request, _ int64) {
	var input models.TaskInput
	if err := json.Unmarshal(readBody(r), &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON parse error"})
		return
	}
	if input.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"titulo": {"Este campo é obrigatório."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[input.ProjectID]; !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Projeto inválido."})
		return
	}
	t := &taskRecord{
		id:          s.id(),
		title:       input.Title,
		description: input.Description,
		status:      models.TaskStatusPending,
		createdAt:   time.Now().UTC(),
		projectID:   input.ProjectID,
	}
	s.tasks[t.id] = t
	writeJSON(w, http.StatusCreated, s.taskLocked(t))
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[pathID(r)]
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, s.taskLocked(t))
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request, _ int64) {
	var input models.TaskInput
	if err := json.Unmarshal(readBody(r), &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON parse error"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[pathID(r)]
	if !ok {
		notFound(w)
		return
	}
	t.title = input.Title
	t.description = input.Description
	if _, ok := s.projects[input.ProjectID]; ok {
		t.projectID = input.ProjectID
	}
	writeJSON(w, http.StatusOK, s.taskLocked(t))
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := pathID(r)
	if _, ok := s.tasks[id]; !ok {
		notFound(w)
		return
	}
	delete(s.tasks, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) markComplete(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[pathID(r)]
	if !ok {
		notFound(w)
		return
	}
	now := time.Now().UTC()
	t.status = models.TaskStatusCompleted
	t.completedAt = &now
	writeJSON(w, http.StatusOK, map[string]string{"status": "Tarefa marcada como concluída"})
}

func (s *Server) assignUser(w http.ResponseWriter, r *http.Request, _ int64) {
	var req struct {
		UserID int64 `json:"user_id"`
	}
	_ = json.Unmarshal(readBody(r), &req)

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[pathID(r)]
	if !ok {
		notFound(w)
		return
	}
	if _, ok := s.users[req.UserID]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Usuário não encontrado"})
		return
	}
	uid := req.UserID
	t.assigneeID = &uid
	writeJSON(w, http.StatusOK, map[string]string{"status": "Usuário atribuído"})
}

func (s *Server) removeUser(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[pathID(r)]
	if !ok {
		notFound(w)
		return
	}
	t.assigneeID = nil
	writeJSON(w, http.StatusOK, map[string]string{"status": "Usuário removido da tarefa"})
}

func (s *Server) changeStatus(w http.ResponseWriter, r *http.Request, _ int64) {
	var req struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(readBody(r), &req)

	status, err := models.ParseTaskStatus(req.Status)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Status inválido"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[pathID(r)]
	if !ok {
		notFound(w)
		return
	}
	t.status = status
	if status == models.TaskStatusCompleted {
		now := time.Now().UTC()
		t.completedAt = &now
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "Status alterado para " + string(status)})
}

func (s *Server) tasksByUser(w http.ResponseWriter, r *http.Request, _ int64) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id é obrigatório"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.tasksLocked(func(t *taskRecord) bool {
		return t.assigneeID != nil && *t.assigneeID == userID
	}))
}

func (s *Server) countByProject(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := make(map[int64]int)
	for _, t := range s.tasks {
		totals[t.projectID]++
	}
	counts := make([]models.ProjectTaskCount, 0, len(totals))
	for pid, total := range totals {
		if p, ok := s.projects[pid]; ok {
			counts = append(counts, models.ProjectTaskCount{ProjectName: p.name, Total: total})
		}
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Total != counts[j].Total {
			return counts[i].Total < counts[j].Total
		}
		return counts[i].ProjectName < counts[j].ProjectName
	})
	writeJSON(w, http.StatusOK, counts)
}

func (s *Server) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Server) addUserLocked(input models.UserInput) models.User {
	u := &userRecord{
		User: models.User{
			ID:        s.id(),
			Username:  input.Username,
			Email:     input.Email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
		},
		password: input.Password,
	}
	s.users[u.ID] = u
	return u.User
}

func (s *Server) tokenLocked(userID int64) string {
	for token, id := range s.tokens {
		if id == userID {
			return token
		}
	}
	b := make([]byte, 20)
	_, _ = rand.Read(b)
	token := hex.EncodeToString(b)
	s.tokens[token] = userID
	return token
}

func (s *Server) projectLocked(p *projectRecord) models.Project {
	project := models.Project{
		ID:          p.id,
		Name:        p.name,
		Description: p.description,
		CreatedAt:   models.Timestamp{Time: p.createdAt},
	}
	if owner, ok := s.users[p.ownerID]; ok {
		project.Owner = owner.User
	}
	return project
}

func (s *Server) taskLocked(t *taskRecord) models.Task {
	task := models.Task{
		ID:          t.id,
		Title:       t.title,
		Description: t.description,
		Status:      t.status,
		CreatedAt:   models.Timestamp{Time: t.createdAt},
	}
	if t.completedAt != nil {
		task.CompletedAt = &models.Timestamp{Time: *t.completedAt}
	}
	if p, ok := s.projects[t.projectID]; ok {
		task.Project = s.projectLocked(p)
	}
	if t.assigneeID != nil {
		if u, ok := s.users[*t.assigneeID]; ok {
			user := u.User
			task.Assignee = &user
		}
	}
	return task
}

func (s *Server) tasksLocked(keep func(*taskRecord) bool) []models.Task {
	tasks := make([]models.Task, 0, len(s.tasks))
	for _, id := range sortedKeys(s.tasks) {
		if t := s.tasks[id]; keep(t) {
			tasks = append(tasks, s.taskLocked(t))
		}
	}
	return tasks
}

func (s *Server) deleteProjectLocked(id int64) {
	delete(s.projects, id)
	for tid, t := range s.tasks {
		if t.projectID == id {
			delete(s.tasks, tid)
		}
	}
}

func (s *Server) writeList(w http.ResponseWriter, items any) {
	if !s.paginate {
		writeJSON(w, http.StatusOK, items)
		return
	}
	raw, _ := json.Marshal(items)
	var list []json.RawMessage
	_ = json.Unmarshal(raw, &list)
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(list),
		"next":     nil,
		"previous": nil,
		"results":  list,
	})
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// readBody drains the request body and puts a fresh reader back, so it can
// be read again further down the chain.
func readBody(r *http.Request) []byte {
	if r.Body == nil {
		return nil
	}
	b, _ := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(b))
	return b
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Não encontrado."})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
