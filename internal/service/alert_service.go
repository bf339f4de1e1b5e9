package service

import (
	"context"

	"github.com/DevFrancisLab/saferoute/internal/domain"
)

func (s *Service) ProcessLocation(ctx context.Context, req domain.AlertCheckRequest) (domain.AlertResult, error) {
	return s.AlertService.ProcessLocation(ctx, req)
}
