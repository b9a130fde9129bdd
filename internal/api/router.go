package api

import (
	"log/slog"
	"net/http"

	"github.com/TWRT/taskboard/internal/api/handlers"
	"github.com/TWRT/taskboard/internal/client"
	"github.com/TWRT/taskboard/internal/service"
)

type Deps struct {
	API      client.Directory
	Sessions handlers.SessionManager
	Toaster  handlers.Toaster
	Logger   *slog.Logger
}

func SetupRouter(deps Deps) (http.Handler, error) {
	renderer, err := handlers.NewRenderer()
	if err != nil {
		return nil, err
	}

	base := &handlers.Base{
		Sessions: deps.Sessions,
		Toaster:  deps.Toaster,
		Renderer: renderer,
		Logger:   deps.Logger,
	}

	dashboardService := service.NewDashboardService(deps.API, deps.Logger)
	projectService := service.NewProjectService(deps.API, deps.Logger)
	taskService := service.NewTaskService(deps.API, deps.Logger)
	userService := service.NewUserService(deps.API, deps.Logger)

	authHandler := handlers.NewAuthHandler(base, deps.Sessions)
	dashboardHandler := handlers.NewDashboardHandler(base, dashboardService)
	projectHandler := handlers.NewProjectHandler(base, projectService)
	taskHandler := handlers.NewTaskHandler(base, taskService)
	userHandler := handlers.NewUserHandler(base, userService)

	protected := http.NewServeMux()

	protected.HandleFunc("GET /{$}", dashboardHandler.Show)
	protected.HandleFunc("POST /logout", authHandler.Logout)

	protected.HandleFunc("GET /projects", projectHandler.List)
	protected.HandleFunc("POST /projects", projectHandler.Create)
	protected.HandleFunc("GET /projects/{id}", projectHandler.Detail)
	protected.HandleFunc("POST /projects/{id}", projectHandler.Update)
	protected.HandleFunc("GET /projects/{id}/delete", projectHandler.ConfirmDelete)
	protected.HandleFunc("POST /projects/{id}/delete", projectHandler.Delete)
	protected.HandleFunc("POST /projects/{id}/owner", projectHandler.AssignOwner)

	protected.HandleFunc("GET /tasks", taskHandler.List)
	protected.HandleFunc("POST /tasks", taskHandler.Create)
	protected.HandleFunc("POST /tasks/{id}", taskHandler.Update)
	protected.HandleFunc("GET /tasks/{id}/delete", taskHandler.ConfirmDelete)
	protected.HandleFunc("POST /tasks/{id}/delete", taskHandler.Delete)
	protected.HandleFunc("POST /tasks/{id}/status", taskHandler.ChangeStatus)
	protected.HandleFunc("POST /tasks/{id}/assignee", taskHandler.SetAssignee)
	protected.HandleFunc("POST /tasks/{id}/complete", taskHandler.MarkComplete)

	protected.HandleFunc("GET /users", userHandler.List)
	protected.HandleFunc("POST /users", userHandler.Create)
	protected.HandleFunc("POST /users/{id}", userHandler.Update)
	protected.HandleFunc("GET /users/{id}/delete", userHandler.ConfirmDelete)
	protected.HandleFunc("POST /users/{id}/delete", userHandler.Delete)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /login", authHandler.LoginPage)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.Handle("/", RequireAuth(deps.Sessions, protected))

	// every page acts with the one stored session, so cross-site form posts
	// must never reach a handler
	csrf := http.NewCrossOriginProtection()

	return logRequests(deps.Logger, csrf.Handler(mux)), nil
}
