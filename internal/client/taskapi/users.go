package taskapi

import (
	"context"
	"net/http"

	"github.com/TWRT/taskboard/internal/models"
)

const usersResource = "usuarios"

func (c *Client) GetUsers(ctx context.Context) ([]models.User, error) {
	return getList[models.User](ctx, c, "/"+usersResource+"/")
}

func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.send(ctx, http.MethodGet, resourcePath(usersResource, id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, input models.UserInput) (*models.User, error) {
	var user models.User
	if err := c.send(ctx, http.MethodPost, "/"+usersResource+"/", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, input models.UserInput) (*models.User, error) {
	var user models.User
	if err := c.send(ctx, http.MethodPut, resourcePath(usersResource, id), input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, resourcePath(usersResource, id), nil, nil)
}
