package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"folio/internal/domain"
	"folio/internal/port"
)

type templateConfigRepo struct {
	db *sqlx.DB
}

// NewTemplateConfigRepo creates a new PostgreSQL-backed TemplateConfigRepository.
func NewTemplateConfigRepo(db *sqlx.DB) port.TemplateConfigRepository {
	return &templateConfigRepo{db: db}
}

func (r *templateConfigRepo) Upsert(ctx context.Context, tc *domain.TemplateConfig) error {
	query := `INSERT INTO template_configs (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query, tc.Key, tc.Value, tc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("templateConfigRepo.Upsert: %w", err)
	}
	return nil
}

func (r *templateConfigRepo) List(ctx context.Context) ([]domain.TemplateConfig, error) {
	var configs []domain.TemplateConfig
	err := r.db.SelectContext(ctx, &configs, "SELECT * FROM template_configs ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("templateConfigRepo.List: %w", err)
	}
	return configs, nil
}
