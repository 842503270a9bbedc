package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"folio/internal/domain"
	"folio/internal/service"
	"folio/internal/structured"
	"folio/mocks"
)

func TestGenerateAnswers_BackfillsMissingKeys(t *testing.T) {
	model := new(mocks.MockChatModel)
	model.On("Invoke", mock.Anything, mock.Anything).
		Return(&domain.RawModelResponse{Content: "```json\n{\"core_skills\": \"Go, Postgres\"}\n```"}, nil)
	usage := &usageSpy{}

	svc := service.NewChatService(model, usage)
	result := svc.GenerateAnswers(context.Background(), `{"name":"Kim"}`)

	require.NotContains(t, result, "error")
	assert.Equal(t, "Go, Postgres", result["core_skills"])
	// Every other answer key is present, carrying the placeholder.
	assert.Equal(t, structured.AnswerPlaceholder, result["best_project"])
	assert.Equal(t, structured.AnswerPlaceholder, result["quantitative_performance"])
	assert.Len(t, result, 12)
	assert.Equal(t, []string{domain.PromptTypeChatAnswers}, usage.recorded())
}

func TestGenerateAnswers_ParseFailureKeepsRawContent(t *testing.T) {
	model := new(mocks.MockChatModel)
	model.On("Invoke", mock.Anything, mock.Anything).
		Return(&domain.RawModelResponse{Content: "no json here, sorry"}, nil)

	svc := service.NewChatService(model, &usageSpy{})
	result := svc.GenerateAnswers(context.Background(), "ctx")

	assert.Contains(t, result["error"], "Could not read structured answers")
	assert.Equal(t, "no json here, sorry", result["raw_content"])
}

func TestGenerateAnswers_ModelError(t *testing.T) {
	model := new(mocks.MockChatModel)
	model.On("Invoke", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	svc := service.NewChatService(model, &usageSpy{})
	result := svc.GenerateAnswers(context.Background(), "ctx")

	assert.Equal(t, "The AI request failed. Please try again in a moment.", result["error"])
	assert.NotContains(t, result, "raw_content")
}

func TestChat_CoachPersona(t *testing.T) {
	model := new(mocks.MockChatModel)
	model.On("Invoke", mock.Anything, mock.MatchedBy(func(p domain.PromptPayload) bool {
		return strings.Contains(p.System, "Popo")
	})).Return(&domain.RawModelResponse{Content: "Try quantifying your impact."}, nil)
	usage := &usageSpy{}

	svc := service.NewChatService(model, usage)
	reply := svc.Chat(context.Background(), "How can I improve?", `{"name":"Kim"}`, false)

	assert.Equal(t, "Try quantifying your impact.", reply)
	assert.Equal(t, []string{domain.PromptTypeCoach}, usage.recorded())
	model.AssertExpectations(t)
}

func TestChat_DocentPersona(t *testing.T) {
	model := new(mocks.MockChatModel)
	model.On("Invoke", mock.Anything, mock.MatchedBy(func(p domain.PromptPayload) bool {
		return strings.Contains(p.System, "Mumu")
	})).Return(&domain.RawModelResponse{Content: "The candidate mainly works in Go."}, nil)
	usage := &usageSpy{}

	svc := service.NewChatService(model, usage)
	reply := svc.Chat(context.Background(), "What is their stack?", `{"skills":["Go"]}`, true)

	assert.Equal(t, "The candidate mainly works in Go.", reply)
	assert.Equal(t, []string{domain.PromptTypeDocent}, usage.recorded())
	model.AssertExpectations(t)
}

func TestChat_ModelErrorYieldsApology(t *testing.T) {
	model := new(mocks.MockChatModel)
	model.On("Invoke", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	svc := service.NewChatService(model, &usageSpy{})
	reply := svc.Chat(context.Background(), "hi", "", false)

	assert.Equal(t, service.ChatApology, reply)
}

func TestChat_EmptyReplyYieldsApology(t *testing.T) {
	model := new(mocks.MockChatModel)
	model.On("Invoke", mock.Anything, mock.Anything).
		Return(&domain.RawModelResponse{Content: ""}, nil)

	svc := service.NewChatService(model, &usageSpy{})
	reply := svc.Chat(context.Background(), "hi", "", false)

	assert.Equal(t, service.ChatApology, reply)
}
