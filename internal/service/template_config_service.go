package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"folio/internal/domain"
	"folio/internal/port"
)

// TemplateConfigService manages the named configuration blobs that drive the
// frontend's portfolio templates.
type TemplateConfigService interface {
	Set(ctx context.Context, key string, value json.RawMessage) (*domain.TemplateConfig, error)
	List(ctx context.Context) ([]domain.TemplateConfig, error)
}

type templateConfigService struct {
	repo port.TemplateConfigRepository
}

// NewTemplateConfigService creates a TemplateConfigService.
func NewTemplateConfigService(repo port.TemplateConfigRepository) TemplateConfigService {
	return &templateConfigService{repo: repo}
}

func (s *templateConfigService) Set(ctx context.Context, key string, value json.RawMessage) (*domain.TemplateConfig, error) {
	if key == "" {
		return nil, fmt.Errorf("templateConfigService.Set: empty key")
	}
	if !json.Valid(value) {
		return nil, fmt.Errorf("templateConfigService.Set: invalid JSON value for %q", key)
	}
	tc := &domain.TemplateConfig{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, tc); err != nil {
		return nil, fmt.Errorf("templateConfigService.Set: %w", err)
	}
	return tc, nil
}

func (s *templateConfigService) List(ctx context.Context) ([]domain.TemplateConfig, error) {
	configs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("templateConfigService.List: %w", err)
	}
	return configs, nil
}
