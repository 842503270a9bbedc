package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"folio/internal/domain"
	"folio/internal/port"
)

type portfolioRepo struct {
	db *sqlx.DB
}

// NewPortfolioRepo creates a new PostgreSQL-backed PortfolioRepository.
func NewPortfolioRepo(db *sqlx.DB) port.PortfolioRepository {
	return &portfolioRepo{db: db}
}

func (r *portfolioRepo) Upsert(ctx context.Context, p *domain.Portfolio) error {
	query := `INSERT INTO portfolios (user_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query, p.UserID, p.Data, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("portfolioRepo.Upsert: %w", err)
	}
	return nil
}

func (r *portfolioRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Portfolio, error) {
	var p domain.Portfolio
	err := r.db.GetContext(ctx, &p, "SELECT * FROM portfolios WHERE user_id = $1", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("portfolioRepo.GetByUserID: %w", err)
	}
	return &p, nil
}

func (r *portfolioRepo) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM portfolios")
	if err != nil {
		return 0, fmt.Errorf("portfolioRepo.Count: %w", err)
	}
	return total, nil
}
