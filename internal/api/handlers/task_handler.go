package handlers

import (
	"net/http"
	"strings"

	"github.com/TWRT/taskboard/internal/models"
	"github.com/TWRT/taskboard/internal/service"
)

type TaskHandler struct {
	*Base
	taskService *service.TaskService
}

func NewTaskHandler(base *Base, taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{Base: base, taskService: taskService}
}

type taskForm struct {
	Open    bool
	Editing *models.Task
	Input   models.TaskInput
}

type tasksView struct {
	*service.TasksPage
	Form     taskForm
	ReturnTo string
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.taskService.LoadPage(r.Context(), queryInt(r, "user"))
	if h.unauthorized(w, r, err) {
		return
	}

	view := tasksView{TasksPage: page, ReturnTo: "/tasks"}
	if page.FilterUserID > 0 {
		view.ReturnTo = r.URL.Path + "?user=" + r.URL.Query().Get("user")
	}
	if r.URL.Query().Get("new") == "1" {
		view.Form.Open = true
	}
	if editID := queryInt(r, "edit"); editID > 0 {
		for i := range page.Tasks {
			if page.Tasks[i].ID == editID {
				t := page.Tasks[i]
				view.Form = taskForm{
					Open:    true,
					Editing: &t,
					Input:   models.TaskInput{Title: t.Title, Description: t.Description, ProjectID: t.Project.ID},
				}
				break
			}
		}
	}

	h.render(w, r, "tasks", "Tarefas", "tasks", view)
}

func taskInput(r *http.Request) models.TaskInput {
	return models.TaskInput{
		Title:       strings.TrimSpace(r.FormValue("titulo")),
		Description: strings.TrimSpace(r.FormValue("descricao")),
		ProjectID:   formInt(r, "projeto"),
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, err := h.taskService.Create(r.Context(), taskInput(r))
	h.afterMutation(w, r, err, "Tarefa criada com sucesso!", returnPath(r, "/tasks"))
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, err := h.taskService.Update(r.Context(), id, taskInput(r))
	h.afterMutation(w, r, err, "Tarefa atualizada com sucesso!", returnPath(r, "/tasks"))
}

func (h *TaskHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathID(r); !ok {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, "confirm", "Deletar tarefa", "tasks", confirmView{
		Message: "Tem certeza que deseja deletar esta tarefa?",
		Action:  r.URL.Path,
		Back:    "/tasks",
	})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	err := h.taskService.Delete(r.Context(), id)
	h.afterMutation(w, r, err, "Tarefa deletada com sucesso!", returnPath(r, "/tasks"))
}

func (h *TaskHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	status, err := models.ParseTaskStatus(r.FormValue("status"))
	if err != nil {
		h.Toaster.Error(r.Context(), "Status inválido")
		http.Redirect(w, r, returnPath(r, "/tasks"), http.StatusSeeOther)
		return
	}
	err = h.taskService.ChangeStatus(r.Context(), id, status)
	h.afterMutation(w, r, err, "Status atualizado com sucesso!", returnPath(r, "/tasks"))
}

func (h *TaskHandler) SetAssignee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	userID := formInt(r, "user_id")
	msg := "Usuário atribuído com sucesso!"
	if userID == 0 {
		msg = "Usuário removido da tarefa!"
	}
	err := h.taskService.SetAssignee(r.Context(), id, userID)
	h.afterMutation(w, r, err, msg, returnPath(r, "/tasks"))
}

func (h *TaskHandler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	err := h.taskService.MarkComplete(r.Context(), id)
	h.afterMutation(w, r, err, "Tarefa marcada como concluída!", returnPath(r, "/tasks"))
}
