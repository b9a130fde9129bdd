package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/TWRT/taskboard/internal/client"
	"github.com/TWRT/taskboard/internal/models"
)

type UserService struct {
	api    client.Directory
	logger *slog.Logger
}

func NewUserService(api client.Directory, logger *slog.Logger) *UserService {
	return &UserService{api: api, logger: logger}
}

func (s *UserService) LoadPage(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := settle(ctx, s.logger,
		fetch{"usuarios", func(ctx context.Context) (err error) {
			users, err = orEmpty(s.api.GetUsers(ctx))
			return err
		}},
	)
	return users, err
}

func trimUser(input *models.UserInput) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
}

// Create requires a password; Update sends one only when it was typed.
func (s *UserService) Create(ctx context.Context, input models.UserInput) (*models.User, error) {
	trimUser(&input)
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, ErrRequiredFields
	}
	user, err := s.api.CreateUser(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, input models.UserInput) (*models.User, error) {
	trimUser(&input)
	if input.Username == "" || input.Email == "" {
		return nil, ErrRequiredFields
	}
	user, err := s.api.UpdateUser(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
