package service

import (
	"context"
	"time"

	"github.com/DevFrancisLab/saferoute/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// AdminHazardService manages the hazard records behind the alert pipeline.
type AdminHazardService interface {
	Create(ctx context.Context, req domain.CreateHazardRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Hazard, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateHazardRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AlertService runs the alert pipeline for one driver location update.
type AlertService interface {
	ProcessLocation(ctx context.Context, req domain.AlertCheckRequest) (domain.AlertResult, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.AlertStats, error)
}

// HazardRepository is the persistence surface the admin service consumes.
type HazardRepository interface {
	Create(ctx context.Context, hazard *domain.Hazard) error
	List(ctx context.Context, page, limit int) ([]*domain.Hazard, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	Update(ctx context.Context, hazard *domain.Hazard) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context, now time.Time) ([]domain.Hazard, error)
}

// HazardSource feeds the pipeline the current active hazard set.
type HazardSource interface {
	Active(ctx context.Context) ([]domain.Hazard, error)
}

// AlertLogStore is the append-only attempt log the fatigue guard reads.
type AlertLogStore interface {
	RecentAttempt(ctx context.Context, driverPhone string, hazardID uuid.UUID, since time.Time) (bool, error)
	Append(ctx context.Context, attempt *domain.AlertAttempt) error
}

// Notifier is the external SMS/voice gateway.
type Notifier interface {
	SendVoice(ctx context.Context, phone, message string) error
	SendSMS(ctx context.Context, phone, message string) error
}

// DriverLock serializes pipeline runs for one driver.
type DriverLock interface {
	Acquire(ctx context.Context, driverPhone string) (func(), error)
}

// HazardCache is the Redis-backed active set with admin invalidation.
type HazardCache interface {
	GetActive(ctx context.Context) ([]domain.Hazard, error)
	SetActive(ctx context.Context, hazards []domain.Hazard, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type StatsRepository interface {
	CountUniqueDrivers(ctx context.Context, minutes int) (int64, error)
	CountAlerts(ctx context.Context, minutes int) (int64, error)
}

type Service struct {
	AdminHazardService AdminHazardService
	AlertService       AlertService
	StatsService       StatsService
}

func NewService(
	adminHazardService AdminHazardService,
	alertService AlertService,
	statsService StatsService,
) *Service {
	return &Service{
		AdminHazardService: adminHazardService,
		AlertService:       alertService,
		StatsService:       statsService,
	}
}
