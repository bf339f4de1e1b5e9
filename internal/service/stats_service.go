package service

import (
	"context"

	"github.com/DevFrancisLab/saferoute/internal/domain"
)

func (s *Service) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.AlertStats, error) {
	return s.StatsService.GetStats(ctx, req)
}
