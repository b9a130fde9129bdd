package service

import (
	"context"
	"log/slog"

	"github.com/TWRT/taskboard/internal/client"
	"github.com/TWRT/taskboard/internal/models"
)

type DashboardStats struct {
	TotalProjects   int
	TotalTasks      int
	TotalUsers      int
	Pending         int
	InProgress      int
	Completed       int
	CountsByProject []models.ProjectTaskCount
}

type DashboardService struct {
	api    client.Directory
	logger *slog.Logger
}

func NewDashboardService(api client.Directory, logger *slog.Logger) *DashboardService {
	return &DashboardService{api: api, logger: logger}
}

// Load computes the counts on the client from the full task list.
func (s *DashboardService) Load(ctx context.Context) (*DashboardStats, error) {
	var (
		projects = []models.Project{}
		tasks    = []models.Task{}
		users    = []models.User{}
		counts   = []models.ProjectTaskCount{}
	)

	err := settle(ctx, s.logger,
		fetch{"projetos", func(ctx context.Context) (err error) {
			projects, err = orEmpty(s.api.GetProjects(ctx))
			return err
		}},
		fetch{"tarefas", func(ctx context.Context) (err error) {
			tasks, err = orEmpty(s.api.GetTasks(ctx))
			return err
		}},
		fetch{"usuarios", func(ctx context.Context) (err error) {
			users, err = orEmpty(s.api.GetUsers(ctx))
			return err
		}},
		fetch{"numero_tarefas_por_projeto", func(ctx context.Context) (err error) {
			counts, err = orEmpty(s.api.GetTaskCountByProject(ctx))
			return err
		}},
	)

	byStatus := models.CountByStatus(tasks)
	stats := &DashboardStats{
		TotalProjects:   len(projects),
		TotalTasks:      len(tasks),
		TotalUsers:      len(users),
		Pending:         byStatus[models.TaskStatusPending],
		InProgress:      byStatus[models.TaskStatusInProgress],
		Completed:       byStatus[models.TaskStatusCompleted],
		CountsByProject: counts,
	}
	return stats, err
}

// orEmpty turns a failed list fetch into an empty list plus the error.
func orEmpty[T any](items []T, err error) ([]T, error) {
	if err != nil || items == nil {
		return []T{}, err
	}
	return items, nil
}
