package client

import (
	"context"

	"github.com/TWRT/taskboard/internal/models"
)

type AuthProvider interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
}

type UserProvider interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, input models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, input models.UserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ProjectProvider interface {
	GetProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	CreateProject(ctx context.Context, input models.ProjectInput) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, input models.ProjectInput) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	GetProjectTasks(ctx context.Context, id int64) ([]models.Task, error)
	GetProgressSummary(ctx context.Context, id int64) (*models.ProgressSummary, error)
	AssignOwner(ctx context.Context, id, userID int64) error
}

type TaskProvider interface {
	GetTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	CreateTask(ctx context.Context, input models.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, input models.TaskInput) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	MarkComplete(ctx context.Context, id int64) error
	AssignUser(ctx context.Context, id, userID int64) error
	RemoveUser(ctx context.Context, id int64) error
	ChangeStatus(ctx context.Context, id int64, status models.TaskStatus) error
	GetTasksByUser(ctx context.Context, userID int64) ([]models.Task, error)
	GetTaskCountByProject(ctx context.Context) ([]models.ProjectTaskCount, error)
}

// Directory is the whole upstream API as seen by the pages.
type Directory interface {
	UserProvider
	ProjectProvider
	TaskProvider
}
