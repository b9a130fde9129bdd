package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/TWRT/taskboard/internal/client"
	"github.com/TWRT/taskboard/internal/models"
)

type TasksPage struct {
	Tasks    []models.Task
	Projects []models.Project
	Users    []models.User
	// FilterUserID is the assignee filter, 0 for all tasks.
	FilterUserID int64
}

type TaskService struct {
	api    client.Directory
	logger *slog.Logger
}

func NewTaskService(api client.Directory, logger *slog.Logger) *TaskService {
	return &TaskService{api: api, logger: logger}
}

func (s *TaskService) LoadPage(ctx context.Context, filterUserID int64) (*TasksPage, error) {
	page := &TasksPage{
		Tasks:        []models.Task{},
		Projects:     []models.Project{},
		Users:        []models.User{},
		FilterUserID: filterUserID,
	}

	err := settle(ctx, s.logger,
		fetch{"tarefas", func(ctx context.Context) (err error) {
			if filterUserID > 0 {
				page.Tasks, err = orEmpty(s.api.GetTasksByUser(ctx, filterUserID))
				return err
			}
			page.Tasks, err = orEmpty(s.api.GetTasks(ctx))
			return err
		}},
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

func validateTask(input *models.TaskInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" || input.ProjectID <= 0 {
		return ErrRequiredFields
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, input models.TaskInput) (*models.Task, error) {
	if err := validateTask(&input); err != nil {
		return nil, err
	}
	task, err := s.api.CreateTask(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id int64, input models.TaskInput) (*models.Task, error) {
	if err := validateTask(&input); err != nil {
		return nil, err
	}
	task, err := s.api.UpdateTask(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (s *TaskService) ChangeStatus(ctx context.Context, id int64, status models.TaskStatus) error {
	if err := s.api.ChangeStatus(ctx, id, status); err != nil {
		return fmt.Errorf("change status: %w", err)
	}
	return nil
}

func (s *TaskService) MarkComplete(ctx context.Context, id int64) error {
	if err := s.api.MarkComplete(ctx, id); err != nil {
		return fmt.Errorf("mark complete: %w", err)
	}
	return nil
}

// SetAssignee assigns userID, or removes the assignee when userID is 0.
func (s *TaskService) SetAssignee(ctx context.Context, id, userID int64) error {
	if userID == 0 {
		if err := s.api.RemoveUser(ctx, id); err != nil {
			return fmt.Errorf("remove assignee: %w", err)
		}
		return nil
	}
	if err := s.api.AssignUser(ctx, id, userID); err != nil {
		return fmt.Errorf("assign user: %w", err)
	}
	return nil
}
