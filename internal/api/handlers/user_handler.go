package handlers

import (
	"net/http"
	"strings"

	"github.com/TWRT/taskboard/internal/models"
	"github.com/TWRT/taskboard/internal/service"
)

type UserHandler struct {
	*Base
	userService *service.UserService
}

func NewUserHandler(base *Base, userService *service.UserService) *UserHandler {
	return &UserHandler{Base: base, userService: userService}
}

type userForm struct {
	Open    bool
	Editing *models.User
	Input   models.UserInput
}

type usersView struct {
	Users []models.User
	Form  userForm
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.LoadPage(r.Context())
	if h.unauthorized(w, r, err) {
		return
	}

	view := usersView{Users: users}
	if r.URL.Query().Get("new") == "1" {
		view.Form.Open = true
	}
	if editID := queryInt(r, "edit"); editID > 0 {
		for i := range users {
			if users[i].ID == editID {
				u := users[i]
				view.Form = userForm{
					Open:    true,
					Editing: &u,
					Input: models.UserInput{
						Username:  u.Username,
						Email:     u.Email,
						FirstName: u.FirstName,
						LastName:  u.LastName,
					},
				}
				break
			}
		}
	}

	h.render(w, r, "users", "Usuários", "users", view)
}

func userInput(r *http.Request) models.UserInput {
	return models.UserInput{
		Username:  strings.TrimSpace(r.FormValue("username")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		FirstName: strings.TrimSpace(r.FormValue("first_name")),
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
		Password:  r.FormValue("password"),
	}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, err := h.userService.Create(r.Context(), userInput(r))
	h.afterMutation(w, r, err, "Usuário criado com sucesso!", "/users")
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, err := h.userService.Update(r.Context(), id, userInput(r))
	h.afterMutation(w, r, err, "Usuário atualizado com sucesso!", "/users")
}

func (h *UserHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathID(r); !ok {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, "confirm", "Deletar usuário", "users", confirmView{
		Message: "Tem certeza que deseja deletar este usuário?",
		Action:  r.URL.Path,
		Back:    "/users",
	})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	err := h.userService.Delete(r.Context(), id)
	h.afterMutation(w, r, err, "Usuário deletado com sucesso!", "/users")
}
