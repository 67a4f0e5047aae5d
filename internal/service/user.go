package service

import (
	"context"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/models"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/repo"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) ListUsers(ctx context.Context, f transport.UserFilter, offset, limit int) (int64, []models.User, error) {
	return s.Repo.ListUsers(ctx, f, offset, limit)
}

func (s *UserService) GetUser(ctx context.Context, idx uint) (*models.User, error) {
	return s.Repo.GetUser(ctx, idx)
}

func (s *UserService) CreateUser(ctx context.Context, user *models.User) (uint, error) {
	return s.Repo.CreateUser(ctx, user)
}

func (s *UserService) UpdateUser(ctx context.Context, idx uint, req transport.UpdateUserRequest) error {
	return s.Repo.UpdateUser(ctx, idx, req)
}

func (s *UserService) DeactivateUser(ctx context.Context, idx uint) error {
	return s.Repo.DeactivateUser(ctx, idx)
}
