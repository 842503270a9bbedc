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

type noticeRepo struct {
	db *sqlx.DB
}

// NewNoticeRepo creates a new PostgreSQL-backed NoticeRepository.
func NewNoticeRepo(db *sqlx.DB) port.NoticeRepository {
	return &noticeRepo{db: db}
}

func (r *noticeRepo) Create(ctx context.Context, n *domain.Notice) error {
	query := `INSERT INTO notices (id, title, body, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.Title, n.Body, n.IsActive, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("noticeRepo.Create: %w", err)
	}
	return nil
}

func (r *noticeRepo) Update(ctx context.Context, n *domain.Notice) error {
	query := `UPDATE notices SET title = $1, body = $2, is_active = $3, updated_at = $4 WHERE id = $5`

	res, err := r.db.ExecContext(ctx, query, n.Title, n.Body, n.IsActive, n.UpdatedAt, n.ID)
	if err != nil {
		return fmt.Errorf("noticeRepo.Update: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("noticeRepo.Update: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *noticeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM notices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("noticeRepo.Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("noticeRepo.Delete: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *noticeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notice, error) {
	var n domain.Notice
	err := r.db.GetContext(ctx, &n, "SELECT * FROM notices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("noticeRepo.GetByID: %w", err)
	}
	return &n, nil
}

func (r *noticeRepo) List(ctx context.Context, offset, limit int) ([]domain.Notice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM notices")
	if err != nil {
		return nil, 0, fmt.Errorf("noticeRepo.List count: %w", err)
	}

	var notices []domain.Notice
	err = r.db.SelectContext(ctx, &notices,
		"SELECT * FROM notices ORDER BY created_at DESC OFFSET $1 LIMIT $2", offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("noticeRepo.List: %w", err)
	}
	return notices, total, nil
}

func (r *noticeRepo) ListActive(ctx context.Context) ([]domain.Notice, error) {
	var notices []domain.Notice
	err := r.db.SelectContext(ctx, &notices,
		"SELECT * FROM notices WHERE is_active = TRUE ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("noticeRepo.ListActive: %w", err)
	}
	return notices, nil
}
