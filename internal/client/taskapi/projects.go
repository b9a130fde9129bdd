package taskapi

import (
	"context"
	"net/http"

	"github.com/TWRT/taskboard/internal/models"
)

const projectsResource = "projetos"

type userIDRequest struct {
	UserID int64 `json:"user_id"`
}

func (c *Client) GetProjects(ctx context.Context) ([]models.Project, error) {
	return getList[models.Project](ctx, c, "/"+projectsResource+"/")
}

func (c *Client) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	if err := c.send(ctx, http.MethodGet, resourcePath(projectsResource, id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) CreateProject(ctx context.Context, input models.ProjectInput) (*models.Project, error) {
	var project models.Project
	if err := c.send(ctx, http.MethodPost, "/"+projectsResource+"/", input, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int64, input models.ProjectInput) (*models.Project, error) {
	var project models.Project
	if err := c.send(ctx, http.MethodPut, resourcePath(projectsResource, id), input, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, resourcePath(projectsResource, id), nil, nil)
}

func (c *Client) GetProjectTasks(ctx context.Context, id int64) ([]models.Task, error) {
	return getList[models.Task](ctx, c, resourcePath(projectsResource, id, "tarefas_do_projeto"))
}

func (c *Client) GetProgressSummary(ctx context.Context, id int64) (*models.ProgressSummary, error) {
	var summary models.ProgressSummary
	if err := c.send(ctx, http.MethodGet, resourcePath(projectsResource, id, "resumo_progresso"), nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) AssignOwner(ctx context.Context, id, userID int64) error {
	return c.send(ctx, http.MethodPost, resourcePath(projectsResource, id, "atribuir_proprietario"), userIDRequest{UserID: userID}, nil)
}
