package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"folio/internal/service"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) ParseResume(ctx context.Context, input service.ParseResumeInput) map[string]any {
	args := m.Called(ctx, input)
	return args.Get(0).(map[string]any)
}

func (m *MockAnalysisService) AnalyzeResume(ctx context.Context, resumeText string, images []string) map[string]any {
	args := m.Called(ctx, resumeText, images)
	return args.Get(0).(map[string]any)
}
