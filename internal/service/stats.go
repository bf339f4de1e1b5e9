package service

import (
	"context"

	"github.com/DevFrancisLab/saferoute/internal/domain"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.AlertStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	drivers, err := s.repo.CountUniqueDrivers(ctx, minutes)
	if err != nil {
		return nil, err
	}

	alerts, err := s.repo.CountAlerts(ctx, minutes)
	if err != nil {
		return nil, err
	}

	return &domain.AlertStats{
		DriverCount: drivers,
		AlertCount:  alerts,
		Minutes:     minutes,
	}, nil
}
