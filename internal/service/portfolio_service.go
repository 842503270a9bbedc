package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"folio/internal/domain"
	"folio/internal/port"
	"folio/internal/prompt"
	"folio/internal/structured"
)

// GenerateResult is the survey-submission response shape. Status is "success"
// or "error"; Data carries the generated portfolio document on success.
type GenerateResult struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// PortfolioService generates portfolio documents from onboarding survey
// answers and persists the saved portfolio blob per user.
type PortfolioService interface {
	Generate(ctx context.Context, answers map[string]any) *GenerateResult
	Save(ctx context.Context, userID uuid.UUID, data json.RawMessage) error
	Get(ctx context.Context, userID uuid.UUID) (*domain.Portfolio, error)
}

type portfolioService struct {
	model port.ChatModel
	repo  port.PortfolioRepository
	usage UsageRecorder
}

// NewPortfolioService creates a PortfolioService. repo may be nil when the
// persistence surface is disabled; Generate still works.
func NewPortfolioService(model port.ChatModel, repo port.PortfolioRepository, usage UsageRecorder) PortfolioService {
	return &portfolioService{model: model, repo: repo, usage: usage}
}

func (s *portfolioService) Generate(ctx context.Context, answers map[string]any) *GenerateResult {
	s.usage.Record(ctx, domain.PromptTypeAutoGenerate)

	resp, err := s.model.Invoke(ctx, prompt.PortfolioGeneration(answers))
	if err != nil {
		log.Printf("portfolioService.Generate: model invocation failed: %v", err)
		return &GenerateResult{Status: "error", Message: invocationMessage(err)}
	}

	text := structured.NormalizeToText(resp.Content)
	obj, err := structured.ExtractObject(text)
	if err != nil {
		log.Printf("portfolioService.Generate: %v", err)
		return &GenerateResult{
			Status:  "error",
			Message: "Could not read the generated portfolio from the AI response. Please try again.",
		}
	}

	return &GenerateResult{
		Status:  "success",
		Message: "Portfolio generated.",
		Data:    obj,
	}
}

func (s *portfolioService) Save(ctx context.Context, userID uuid.UUID, data json.RawMessage) error {
	if !json.Valid(data) {
		return fmt.Errorf("portfolioService.Save: invalid portfolio JSON")
	}
	p := &domain.Portfolio{
		UserID:    userID,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return fmt.Errorf("portfolioService.Save: %w", err)
	}
	return nil
}

func (s *portfolioService) Get(ctx context.Context, userID uuid.UUID) (*domain.Portfolio, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("portfolioService.Get: %w", err)
	}
	return p, nil
}
