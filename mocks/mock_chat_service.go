package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockChatService is a mock implementation of service.ChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) GenerateAnswers(ctx context.Context, portfolioContext string) map[string]any {
	args := m.Called(ctx, portfolioContext)
	return args.Get(0).(map[string]any)
}

func (m *MockChatService) Chat(ctx context.Context, message, portfolioContext string, isShared bool) string {
	args := m.Called(ctx, message, portfolioContext, isShared)
	return args.String(0)
}
