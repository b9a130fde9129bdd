package handlers

import (
	"net/http"

	"github.com/TWRT/taskboard/internal/service"
)

type DashboardHandler struct {
	*Base
	dashboardService *service.DashboardService
}

func NewDashboardHandler(base *Base, dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{Base: base, dashboardService: dashboardService}
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Load(r.Context())
	if h.unauthorized(w, r, err) {
		return
	}
	if r.URL.Query().Get("reload") == "1" {
		h.Toaster.Success(r.Context(), "Dados carregados com sucesso!")
	}
	h.render(w, r, "dashboard", "Dashboard", "dashboard", stats)
}
