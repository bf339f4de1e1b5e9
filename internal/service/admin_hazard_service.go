package service

import (
	"context"

	"github.com/DevFrancisLab/saferoute/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) Create(ctx context.Context, req domain.CreateHazardRequest) (uuid.UUID, error) {
	return s.AdminHazardService.Create(ctx, req)
}

func (s *Service) List(ctx context.Context, page, limit int) ([]*domain.Hazard, int64, error) {
	return s.AdminHazardService.List(ctx, page, limit)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	return s.AdminHazardService.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req domain.UpdateHazardRequest) error {
	return s.AdminHazardService.Update(ctx, id, req)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.AdminHazardService.Delete(ctx, id)
}
