package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"folio/internal/domain"
	"folio/internal/port"
)

type usageRepo struct {
	db *sqlx.DB
}

// NewUsageRepo creates a new PostgreSQL-backed UsageRepository.
func NewUsageRepo(db *sqlx.DB) port.UsageRepository {
	return &usageRepo{db: db}
}

func (r *usageRepo) Record(ctx context.Context, promptType string, occurredAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO ai_usage_events (id, prompt_type, occurred_at) VALUES ($1, $2, $3)",
		uuid.New(), promptType, occurredAt)
	if err != nil {
		return fmt.Errorf("usageRepo.Record: %w", err)
	}
	return nil
}

func (r *usageRepo) AggregateDaily(ctx context.Context, since time.Time) ([]domain.UsageStat, error) {
	query := `SELECT date_trunc('day', occurred_at) AS day, prompt_type, COUNT(*) AS count
		FROM ai_usage_events
		WHERE occurred_at >= $1
		GROUP BY day, prompt_type
		ORDER BY day, prompt_type`

	var stats []domain.UsageStat
	err := r.db.SelectContext(ctx, &stats, query, since)
	if err != nil {
		return nil, fmt.Errorf("usageRepo.AggregateDaily: %w", err)
	}
	return stats, nil
}
