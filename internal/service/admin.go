package service

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/DevFrancisLab/saferoute/internal/domain"
	"github.com/DevFrancisLab/saferoute/pkg/e"

	"github.com/google/uuid"
)

type AdminService struct {
	repo   HazardRepository
	cache  HazardCache
	logger *slog.Logger
}

func NewAdminHazardService(repo HazardRepository, cache HazardCache, logger *slog.Logger) *AdminService {
	return &AdminService{repo: repo, cache: cache, logger: logger}
}

func (s *AdminService) Create(ctx context.Context, req domain.CreateHazardRequest) (uuid.UUID, error) {
	if !req.Type.Valid() {
		return uuid.Nil, fmt.Errorf("hazard type %q: %w", req.Type, e.ErrInvalidInput)
	}
	if req.Severity < 1 || req.Severity > 5 {
		return uuid.Nil, fmt.Errorf("severity %d: %w", req.Severity, e.ErrInvalidSeverity)
	}

	h := &domain.Hazard{
		ID:        uuid.New(),
		Type:      req.Type,
		Severity:  req.Severity,
		Lat:       req.Lat,
		Lng:       req.Lng,
		ExpiresAt: req.ExpiresAt,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return uuid.Nil, err
	}

	s.invalidateCache(ctx)
	return h.ID, nil
}

func (s *AdminService) List(ctx context.Context, page, limit int) ([]*domain.Hazard, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *AdminService) Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	return s.repo.Get(ctx, id)
}

func (s *AdminService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateHazardRequest) error {
	h, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return fmt.Errorf("hazard type %q: %w", *req.Type, e.ErrInvalidInput)
		}
		h.Type = *req.Type
	}
	if req.Severity != nil {
		if *req.Severity < 1 || *req.Severity > 5 {
			return fmt.Errorf("severity %d: %w", *req.Severity, e.ErrInvalidSeverity)
		}
		h.Severity = *req.Severity
	}
	if req.Lat != nil {
		h.Lat = *req.Lat
	}
	if req.Lng != nil {
		h.Lng = *req.Lng
	}
	if req.ExpiresAt != nil {
		h.ExpiresAt = req.ExpiresAt
	}

	if err := s.repo.Update(ctx, h); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *AdminService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *AdminService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("hazard cache invalidation failed", slog.Any("error", err))
	}
}
