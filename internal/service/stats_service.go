package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"folio/internal/port"
	"folio/internal/statsexport"
)

// UsageRecorder logs one model invocation for admin statistics. Recording is
// best effort and must never affect the pipeline that triggered it.
type UsageRecorder interface {
	Record(ctx context.Context, promptType string)
}

// Overview is the headline admin statistics block.
type Overview struct {
	TotalUsers      int `json:"total_users"`
	TotalPortfolios int `json:"total_portfolios"`
}

// StatsService aggregates admin statistics and model-usage accounting.
type StatsService interface {
	UsageRecorder
	Overview(ctx context.Context) (*Overview, error)
	DailyUsage(ctx context.Context, days int) ([]statsexport.UsageRow, error)
	ExportUsageXLSX(ctx context.Context, days int) ([]byte, error)
}

type statsService struct {
	users      port.UserRepository
	portfolios port.PortfolioRepository
	usage      port.UsageRepository
}

// NewStatsService creates a StatsService.
func NewStatsService(users port.UserRepository, portfolios port.PortfolioRepository, usage port.UsageRepository) StatsService {
	return &statsService{users: users, portfolios: portfolios, usage: usage}
}

func (s *statsService) Record(ctx context.Context, promptType string) {
	if s.usage == nil {
		return
	}
	// Detach from the request context so a cancelled request still records.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err := s.usage.Record(ctx, promptType, time.Now().UTC()); err != nil {
		log.Printf("statsService.Record: recording %s usage failed: %v", promptType, err)
	}
}

func (s *statsService) Overview(ctx context.Context) (*Overview, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("statsService.Overview: counting users: %w", err)
	}
	portfolioCount, err := s.portfolios.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("statsService.Overview: counting portfolios: %w", err)
	}
	return &Overview{TotalUsers: userCount, TotalPortfolios: portfolioCount}, nil
}

func (s *statsService) DailyUsage(ctx context.Context, days int) ([]statsexport.UsageRow, error) {
	stats, err := s.usage.AggregateDaily(ctx, sinceDay(days))
	if err != nil {
		return nil, fmt.Errorf("statsService.DailyUsage: %w", err)
	}
	rows := make([]statsexport.UsageRow, 0, len(stats))
	for _, st := range stats {
		rows = append(rows, statsexport.UsageRow{
			Day:        st.Day,
			PromptType: st.PromptType,
			Count:      st.Count,
		})
	}
	return rows, nil
}

func (s *statsService) ExportUsageXLSX(ctx context.Context, days int) ([]byte, error) {
	rows, err := s.DailyUsage(ctx, days)
	if err != nil {
		return nil, err
	}
	data, err := statsexport.WriteUsageWorkbook(rows)
	if err != nil {
		return nil, fmt.Errorf("statsService.ExportUsageXLSX: %w", err)
	}
	return data, nil
}

func sinceDay(days int) time.Time {
	if days <= 0 {
		days = 30
	}
	return time.Now().UTC().AddDate(0, 0, -days).Truncate(24 * time.Hour)
}
