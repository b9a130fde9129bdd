package handlers

import (
	"net/http"
	"strings"

	"github.com/TWRT/taskboard/internal/models"
	"github.com/TWRT/taskboard/internal/service"
)

type ProjectHandler struct {
	*Base
	projectService *service.ProjectService
}

func NewProjectHandler(base *Base, projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{Base: base, projectService: projectService}
}

type projectForm struct {
	Open    bool
	Editing *models.Project
	Input   models.ProjectInput
}

type projectsView struct {
	*service.ProjectsPage
	Form projectForm
}

type projectDetailView struct {
	*service.ProjectDetail
}

type confirmView struct {
	Message string
	Action  string
	Back    string
}

// List renders the grid; ?new=1 or ?edit=<id> opens the form over it.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.projectService.LoadPage(r.Context())
	if h.unauthorized(w, r, err) {
		return
	}

	view := projectsView{ProjectsPage: page}
	if r.URL.Query().Get("new") == "1" {
		view.Form.Open = true
	}
	if editID := queryInt(r, "edit"); editID > 0 {
		for i := range page.Projects {
			if page.Projects[i].ID == editID {
				p := page.Projects[i]
				owner := p.Owner.ID
				view.Form = projectForm{
					Open:    true,
					Editing: &p,
					Input:   models.ProjectInput{Name: p.Name, Description: p.Description, OwnerID: &owner},
				}
				break
			}
		}
	}

	h.render(w, r, "projects", "Projetos", "projects", view)
}

func projectInput(r *http.Request) models.ProjectInput {
	input := models.ProjectInput{
		Name:        strings.TrimSpace(r.FormValue("nome")),
		Description: strings.TrimSpace(r.FormValue("descricao")),
	}
	if owner := formInt(r, "proprietario"); owner > 0 {
		input.OwnerID = &owner
	}
	return input
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, err := h.projectService.Create(r.Context(), projectInput(r))
	h.afterMutation(w, r, err, "Projeto criado com sucesso!", "/projects")
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, err := h.projectService.Update(r.Context(), id, projectInput(r))
	h.afterMutation(w, r, err, "Projeto atualizado com sucesso!", "/projects")
}

func (h *ProjectHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	detail, err := h.projectService.LoadDetail(r.Context(), id)
	if h.unauthorized(w, r, err) {
		return
	}
	if detail == nil {
		h.Logger.Error("Erro ao carregar projeto", "id", id, "error", err)
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}
	h.render(w, r, "project_detail", detail.Project.Name, "projects", projectDetailView{ProjectDetail: detail})
}

func (h *ProjectHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathID(r); !ok {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, "confirm", "Deletar projeto", "projects", confirmView{
		Message: "Tem certeza que deseja deletar este projeto?",
		Action:  r.URL.Path,
		Back:    "/projects",
	})
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	err := h.projectService.Delete(r.Context(), id)
	h.afterMutation(w, r, err, "Projeto deletado com sucesso!", "/projects")
}

func (h *ProjectHandler) AssignOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	err := h.projectService.AssignOwner(r.Context(), id, formInt(r, "user_id"))
	h.afterMutation(w, r, err, "Proprietário atualizado com sucesso!", returnPath(r, "/projects"))
}
