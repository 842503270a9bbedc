package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"folio/internal/domain"
)

// UserRepository abstracts user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.User, int, error)
	ListEmails(ctx context.Context) ([]string, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// PortfolioRepository abstracts portfolio blob persistence.
type PortfolioRepository interface {
	Upsert(ctx context.Context, p *domain.Portfolio) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Portfolio, error)
	Count(ctx context.Context) (int, error)
}

// NoticeRepository abstracts notice persistence.
type NoticeRepository interface {
	Create(ctx context.Context, n *domain.Notice) error
	Update(ctx context.Context, n *domain.Notice) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Notice, int, error)
	ListActive(ctx context.Context) ([]domain.Notice, error)
}

// TemplateConfigRepository abstracts template configuration persistence.
type TemplateConfigRepository interface {
	Upsert(ctx context.Context, tc *domain.TemplateConfig) error
	List(ctx context.Context) ([]domain.TemplateConfig, error)
}

// UsageRepository abstracts model-usage event persistence.
type UsageRepository interface {
	Record(ctx context.Context, promptType string, occurredAt time.Time) error
	AggregateDaily(ctx context.Context, since time.Time) ([]domain.UsageStat, error)
}
