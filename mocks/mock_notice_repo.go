package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
)

// MockNoticeRepo is a mock implementation of port.NoticeRepository.
type MockNoticeRepo struct {
	mock.Mock
}

func (m *MockNoticeRepo) Create(ctx context.Context, n *domain.Notice) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNoticeRepo) Update(ctx context.Context, n *domain.Notice) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNoticeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNoticeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}

func (m *MockNoticeRepo) List(ctx context.Context, offset, limit int) ([]domain.Notice, int, error) {
	args := m.Called(ctx, offset, limit)
	var notices []domain.Notice
	if args.Get(0) != nil {
		notices = args.Get(0).([]domain.Notice)
	}
	return notices, args.Int(1), args.Error(2)
}

func (m *MockNoticeRepo) ListActive(ctx context.Context) ([]domain.Notice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notice), args.Error(1)
}
