package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
)

// MockUsageRepo is a mock implementation of port.UsageRepository.
type MockUsageRepo struct {
	mock.Mock
}

func (m *MockUsageRepo) Record(ctx context.Context, promptType string, occurredAt time.Time) error {
	args := m.Called(ctx, promptType, occurredAt)
	return args.Error(0)
}

func (m *MockUsageRepo) AggregateDaily(ctx context.Context, since time.Time) ([]domain.UsageStat, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UsageStat), args.Error(1)
}
