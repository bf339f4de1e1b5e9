package postgres

import (
	"context"
	"time"

	"github.com/DevFrancisLab/saferoute/internal/domain"

	"github.com/google/uuid"
)

type HazardRepository interface {
	Create(ctx context.Context, hazard *domain.Hazard) error
	List(ctx context.Context, page, limit int) ([]*domain.Hazard, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	Update(ctx context.Context, hazard *domain.Hazard) error
	Delete(ctx context.Context, id uuid.UUID) error // soft delete
	ListActive(ctx context.Context, now time.Time) ([]domain.Hazard, error)
}

type AlertLogRepository interface {
	Append(ctx context.Context, attempt *domain.AlertAttempt) error
	RecentAttempt(ctx context.Context, driverPhone string, hazardID uuid.UUID, since time.Time) (bool, error)
}

type StatsRepository interface {
	CountUniqueDrivers(ctx context.Context, minutes int) (int64, error)
	CountAlerts(ctx context.Context, minutes int) (int64, error)
}

func (p *Postgres) Hazards() HazardRepository    { return p.Hazard }
func (p *Postgres) AlertLog() AlertLogRepository { return p.Log }
func (p *Postgres) Stats() StatsRepository       { return p.Stat }
