package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/TWRT/taskboard/internal/models"
)

type SessionManager interface {
	SessionState
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	Logout(ctx context.Context) error
}

type AuthHandler struct {
	*Base
	sessions SessionManager
}

func NewAuthHandler(base *Base, sessions SessionManager) *AuthHandler {
	return &AuthHandler{Base: base, sessions: sessions}
}

type loginView struct {
	Username string
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.sessions.IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, "login", "Entrar", "", loginView{})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	creds := models.Credentials{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
	if creds.Username == "" || creds.Password == "" {
		h.Toaster.Error(r.Context(), "Preencha todos os campos")
		h.render(w, r, "login", "Entrar", "", loginView{Username: creds.Username})
		return
	}

	user, err := h.sessions.Login(r.Context(), creds)
	if err != nil {
		h.Logger.Error("Erro no login", "username", creds.Username, "error", err)
		h.Toaster.Error(r.Context(), "Credenciais inválidas")
		h.render(w, r, "login", "Entrar", "", loginView{Username: creds.Username})
		return
	}

	h.Toaster.Success(r.Context(), fmt.Sprintf("Bem-vindo, %s!", user.Username))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		h.Logger.Error("logout", "error", err)
	}
	h.Toaster.Success(r.Context(), "Logout realizado com sucesso!")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
