package taskapi

import (
	"context"
	"net/http"

	"github.com/TWRT/taskboard/internal/models"
)

func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.send(ctx, http.MethodPost, "/auth/login/", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
