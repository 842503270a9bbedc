package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"folio/internal/domain"
	"folio/internal/service"
	"folio/mocks"
)

func TestGenerate_Success(t *testing.T) {
	model := new(mocks.MockChatModel)
	model.On("Invoke", mock.Anything, mock.Anything).
		Return(&domain.RawModelResponse{Content: `{"name": "Kim", "intro": "Backend engineer"}`}, nil)
	usage := &usageSpy{}

	svc := service.NewPortfolioService(model, nil, usage)
	result := svc.Generate(context.Background(), map[string]any{"name": "Kim"})

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "Portfolio generated.", result.Message)
	assert.Equal(t, "Kim", result.Data["name"])
	assert.Equal(t, []string{domain.PromptTypeAutoGenerate}, usage.recorded())
}

func TestGenerate_ModelError(t *testing.T) {
	model := new(mocks.MockChatModel)
	model.On("Invoke", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	svc := service.NewPortfolioService(model, nil, &usageSpy{})
	result := svc.Generate(context.Background(), map[string]any{})

	assert.Equal(t, "error", result.Status)
	assert.Equal(t, "The AI request failed. Please try again in a moment.", result.Message)
	assert.Nil(t, result.Data)
}

func TestGenerate_UnparsableReply(t *testing.T) {
	model := new(mocks.MockChatModel)
	model.On("Invoke", mock.Anything, mock.Anything).
		Return(&domain.RawModelResponse{Content: "plain prose, no json"}, nil)

	svc := service.NewPortfolioService(model, nil, &usageSpy{})
	result := svc.Generate(context.Background(), map[string]any{})

	assert.Equal(t, "error", result.Status)
	assert.Contains(t, result.Message, "Could not read the generated portfolio")
}

func TestSave_Upserts(t *testing.T) {
	userID := uuid.New()
	repo := new(mocks.MockPortfolioRepo)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.Portfolio) bool {
		return p.UserID == userID
	})).Return(nil)

	svc := service.NewPortfolioService(nil, repo, &usageSpy{})
	err := svc.Save(context.Background(), userID, json.RawMessage(`{"name":"Kim"}`))

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSave_RejectsInvalidJSON(t *testing.T) {
	repo := new(mocks.MockPortfolioRepo)

	svc := service.NewPortfolioService(nil, repo, &usageSpy{})
	err := svc.Save(context.Background(), uuid.New(), json.RawMessage(`{"broken": `))

	require.Error(t, err)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(mocks.MockPortfolioRepo)
	repo.On("GetByUserID", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	svc := service.NewPortfolioService(nil, repo, &usageSpy{})
	_, err := svc.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
