package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
)

// MockChatModel is a mock implementation of port.ChatModel.
type MockChatModel struct {
	mock.Mock
}

func (m *MockChatModel) Invoke(ctx context.Context, payload domain.PromptPayload) (*domain.RawModelResponse, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawModelResponse), args.Error(1)
}
