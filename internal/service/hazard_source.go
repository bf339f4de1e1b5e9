package service

import (
	"context"
	"time"

	"log/slog"

	"github.com/DevFrancisLab/saferoute/internal/domain"
)

// cachedHazardSource reads the active set from Redis and falls back to
// Postgres on a miss, refilling the cache on the way out. Cache errors are
// downgraded to a fallback read so a flaky Redis never fails a request.
type cachedHazardSource struct {
	cache  HazardCache
	repo   HazardRepository
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedHazardSource(cache HazardCache, repo HazardRepository, ttl time.Duration, logger *slog.Logger) HazardSource {
	return &cachedHazardSource{
		cache:  cache,
		repo:   repo,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *cachedHazardSource) Active(ctx context.Context) ([]domain.Hazard, error) {
	cached, err := s.cache.GetActive(ctx)
	if err != nil {
		s.logger.Warn("hazard cache read failed, falling back to store", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	hazards, err := s.repo.ListActive(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetActive(ctx, hazards, s.ttl); err != nil {
		s.logger.Warn("hazard cache refill failed", slog.Any("error", err))
	}

	return hazards, nil
}
