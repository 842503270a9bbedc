package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"folio/internal/domain"
	"folio/internal/port"
)

// NoticeInput is the DTO for creating or updating a notice.
type NoticeInput struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	IsActive bool   `json:"is_active"`
}

// NoticeService covers announcements: an admin CRUD surface plus the public
// active-notice listing.
type NoticeService interface {
	Create(ctx context.Context, input NoticeInput) (*domain.Notice, error)
	Update(ctx context.Context, id uuid.UUID, input NoticeInput) (*domain.Notice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, pageSize int) ([]domain.Notice, int, error)
	ListActive(ctx context.Context) ([]domain.Notice, error)
}

type noticeService struct {
	repo port.NoticeRepository
}

// NewNoticeService creates a NoticeService.
func NewNoticeService(repo port.NoticeRepository) NoticeService {
	return &noticeService{repo: repo}
}

func (s *noticeService) Create(ctx context.Context, input NoticeInput) (*domain.Notice, error) {
	now := time.Now().UTC()
	n := &domain.Notice{
		ID:        uuid.New(),
		Title:     input.Title,
		Body:      input.Body,
		IsActive:  input.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("noticeService.Create: %w", err)
	}
	return n, nil
}

func (s *noticeService) Update(ctx context.Context, id uuid.UUID, input NoticeInput) (*domain.Notice, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("noticeService.Update: %w", err)
	}
	n.Title = input.Title
	n.Body = input.Body
	n.IsActive = input.IsActive
	n.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, fmt.Errorf("noticeService.Update: %w", err)
	}
	return n, nil
}

func (s *noticeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("noticeService.Delete: %w", err)
	}
	return nil
}

func (s *noticeService) List(ctx context.Context, page, pageSize int) ([]domain.Notice, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	notices, total, err := s.repo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("noticeService.List: %w", err)
	}
	return notices, total, nil
}

func (s *noticeService) ListActive(ctx context.Context) ([]domain.Notice, error) {
	notices, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("noticeService.ListActive: %w", err)
	}
	return notices, nil
}
