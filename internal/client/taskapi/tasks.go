package taskapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/TWRT/taskboard/internal/models"
)

const tasksResource = "tarefas"

type changeStatusRequest struct {
	Status models.TaskStatus `json:"status"`
}

func (c *Client) GetTasks(ctx context.Context) ([]models.Task, error) {
	return getList[models.Task](ctx, c, "/"+tasksResource+"/")
}

func (c *Client) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	if err := c.send(ctx, http.MethodGet, resourcePath(tasksResource, id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask does not send a status; the server assigns the default.
func (c *Client) CreateTask(ctx context.Context, input models.TaskInput) (*models.Task, error) {
	var task models.Task
	if err := c.send(ctx, http.MethodPost, "/"+tasksResource+"/", input, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int64, input models.TaskInput) (*models.Task, error) {
	var task models.Task
	if err := c.send(ctx, http.MethodPut, resourcePath(tasksResource, id), input, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, resourcePath(tasksResource, id), nil, nil)
}

func (c *Client) MarkComplete(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodPost, resourcePath(tasksResource, id, "marcar_concluida"), nil, nil)
}

func (c *Client) AssignUser(ctx context.Context, id, userID int64) error {
	return c.send(ctx, http.MethodPost, resourcePath(tasksResource, id, "atribuir_usuario"), userIDRequest{UserID: userID}, nil)
}

func (c *Client) RemoveUser(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodPost, resourcePath(tasksResource, id, "remover_usuario"), nil, nil)
}

func (c *Client) ChangeStatus(ctx context.Context, id int64, status models.TaskStatus) error {
	return c.send(ctx, http.MethodPost, resourcePath(tasksResource, id, "mudar_status"), changeStatusRequest{Status: status}, nil)
}

func (c *Client) GetTasksByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	path := "/" + tasksResource + "/tarefas_por_usuario/?user_id=" + strconv.FormatInt(userID, 10)
	return getList[models.Task](ctx, c, path)
}

func (c *Client) GetTaskCountByProject(ctx context.Context) ([]models.ProjectTaskCount, error) {
	return getList[models.ProjectTaskCount](ctx, c, "/"+tasksResource+"/numero_tarefas_por_projeto/")
}
