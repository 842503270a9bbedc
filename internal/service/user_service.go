package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"folio/internal/domain"
	"folio/internal/port"
)

// UserService covers the admin-facing user surface.
type UserService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, search string, page, pageSize int) ([]domain.User, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo port.UserRepository
}

// NewUserService creates a UserService.
func NewUserService(repo port.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("userService.Get: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, search string, page, pageSize int) ([]domain.User, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	users, total, err := s.repo.List(ctx, search, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("userService.List: %w", err)
	}
	return users, total, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("userService.Delete: %w", err)
	}
	return nil
}
