package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/TWRT/taskboard/internal/client"
	"github.com/TWRT/taskboard/internal/models"
)

type ProjectsPage struct {
	Projects []models.Project
	Users    []models.User
}

type ProjectDetail struct {
	Project *models.Project
	Tasks   []models.Task
	Summary models.ProgressSummary
	Users   []models.User
}

type ProjectService struct {
	api    client.Directory
	logger *slog.Logger
}

func NewProjectService(api client.Directory, logger *slog.Logger) *ProjectService {
	return &ProjectService{api: api, logger: logger}
}

func (s *ProjectService) LoadPage(ctx context.Context) (*ProjectsPage, error) {
	page := &ProjectsPage{Projects: []models.Project{}, Users: []models.User{}}

	err := settle(ctx, s.logger,
		fetch{"projetos", func(ctx context.Context) (err error) {
			page.Projects, err = orEmpty(s.api.GetProjects(ctx))
			return err
		}},
		fetch{"usuarios", func(ctx context.Context) (err error) {
			page.Users, err = orEmpty(s.api.GetUsers(ctx))
			return err
		}},
	)
	return page, err
}

// LoadDetail fails only when the project itself cannot be read.
func (s *ProjectService) LoadDetail(ctx context.Context, id int64) (*ProjectDetail, error) {
	project, err := s.api.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	detail := &ProjectDetail{Project: project, Tasks: []models.Task{}, Users: []models.User{}}
	err = settle(ctx, s.logger,
		fetch{"tarefas_do_projeto", func(ctx context.Context) (err error) {
			detail.Tasks, err = orEmpty(s.api.GetProjectTasks(ctx, id))
			return err
		}},
		fetch{"resumo_progresso", func(ctx context.Context) error {
			summary, err := s.api.GetProgressSummary(ctx, id)
			if err != nil {
				return err
			}
			detail.Summary = *summary
			return nil
		}},
		fetch{"usuarios", func(ctx context.Context) (err error) {
			detail.Users, err = orEmpty(s.api.GetUsers(ctx))
			return err
		}},
	)
	return detail, err
}

func validateProject(input *models.ProjectInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.Name == "" || input.Description == "" || input.OwnerID == nil || *input.OwnerID <= 0 {
		return ErrRequiredFields
	}
	return nil
}

func (s *ProjectService) Create(ctx context.Context, input models.ProjectInput) (*models.Project, error) {
	if err := validateProject(&input); err != nil {
		return nil, err
	}
	project, err := s.api.CreateProject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id int64, input models.ProjectInput) (*models.Project, error) {
	if err := validateProject(&input); err != nil {
		return nil, err
	}
	project, err := s.api.UpdateProject(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) AssignOwner(ctx context.Context, id, userID int64) error {
	if userID <= 0 {
		return ErrRequiredFields
	}
	if err := s.api.AssignOwner(ctx, id, userID); err != nil {
		return fmt.Errorf("assign owner: %w", err)
	}
	return nil
}
