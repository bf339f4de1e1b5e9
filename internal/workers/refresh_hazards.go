package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/DevFrancisLab/saferoute/internal/domain"
)

type HazardLister interface {
	ListActive(ctx context.Context, now time.Time) ([]domain.Hazard, error)
}

type HazardCacheWriter interface {
	SetActive(ctx context.Context, hazards []domain.Hazard, ttl time.Duration) error
}

// CacheRefresher keeps the Redis hazard cache warm so location checks stay
// off Postgres, and naturally drops hazards as they expire.
type CacheRefresher struct {
	repo     HazardLister
	cache    HazardCacheWriter
	logger   *slog.Logger
	interval time.Duration
	ttl      time.Duration
}

func NewCacheRefresher(repo HazardLister, cache HazardCacheWriter, logger *slog.Logger, interval, ttl time.Duration) *CacheRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &CacheRefresher{
		repo:     repo,
		cache:    cache,
		logger:   logger,
		interval: interval,
		ttl:      ttl,
	}
}

func (w *CacheRefresher) Run(ctx context.Context) {
	w.logger.Info("hazard cache refresher STARTED", slog.Duration("interval", w.interval))

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("hazard cache refresher STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CacheRefresher) refresh(ctx context.Context) {
	hazards, err := w.repo.ListActive(ctx, time.Now().UTC())
	if err != nil {
		w.logger.Error("refresh: ListActive failed", slog.Any("error", err))
		return
	}
	if err := w.cache.SetActive(ctx, hazards, w.ttl); err != nil {
		w.logger.Error("refresh: SetActive failed", slog.Any("error", err))
		return
	}
	w.logger.Debug("hazard cache refreshed", slog.Int("active", len(hazards)))
}
