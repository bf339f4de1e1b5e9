package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/DevFrancisLab/saferoute/internal/domain"
	"github.com/DevFrancisLab/saferoute/internal/service"
	mock_service "github.com/DevFrancisLab/saferoute/internal/service/mocks"
	"github.com/DevFrancisLab/saferoute/pkg/e"
)

func newAdmin(t *testing.T) (*service.AdminService, *mock_service.MockHazardRepository, *mock_service.MockHazardCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_service.NewMockHazardRepository(ctrl)
	cache := mock_service.NewMockHazardCache(ctrl)
	return service.NewAdminHazardService(repo, cache, testLogger()), repo, cache
}

func TestAdminCreate_OK(t *testing.T) {
	t.Parallel()

	svc, repo, cache := newAdmin(t)

	req := domain.CreateHazardRequest{
		Type:     domain.HazardBlackspot,
		Severity: 4,
		Lat:      -1.2921,
		Lng:      36.8219,
	}

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *domain.Hazard) error {
			if h.ID == uuid.Nil {
				t.Fatalf("hazard created without id")
			}
			if h.Type != req.Type || h.Severity != req.Severity || h.Lat != req.Lat || h.Lng != req.Lng {
				t.Fatalf("fields not carried over: %+v", h)
			}
			if h.CreatedAt.IsZero() {
				t.Fatalf("created_at not set")
			}
			return nil
		}).
		Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	id, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("expected a real id")
	}
}

func TestAdminCreate_InvalidType(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAdmin(t)

	_, err := svc.Create(context.Background(), domain.CreateHazardRequest{
		Type:     "LANDSLIDE",
		Severity: 3,
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}
}

func TestAdminCreate_InvalidSeverity(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAdmin(t)

	_, err := svc.Create(context.Background(), domain.CreateHazardRequest{
		Type:     domain.HazardAccident,
		Severity: 6,
	})
	if !errors.Is(err, e.ErrInvalidSeverity) {
		t.Fatalf("expected ErrInvalidSeverity got %v", err)
	}
}

func TestAdminCreate_RepoErrorSkipsInvalidation(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newAdmin(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(e.ErrStoreUnavailable).
		Times(1)

	_, err := svc.Create(context.Background(), domain.CreateHazardRequest{
		Type:     domain.HazardAccident,
		Severity: 3,
		Lat:      -1.29,
		Lng:      36.82,
	})
	if !errors.Is(err, e.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable got %v", err)
	}
}

func TestAdminUpdate_AppliesPartialFields(t *testing.T) {
	t.Parallel()

	svc, repo, cache := newAdmin(t)

	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	existing := &domain.Hazard{
		ID:        id,
		Type:      domain.HazardBadRoad,
		Severity:  2,
		Lat:       -1.2921,
		Lng:       36.8219,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	newSeverity := 5

	repo.EXPECT().Get(gomock.Any(), id).Return(existing, nil).Times(1)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *domain.Hazard) error {
			if h.Severity != 5 {
				t.Fatalf("severity not applied: %+v", h)
			}
			if h.Type != domain.HazardBadRoad || h.Lat != existing.Lat {
				t.Fatalf("untouched fields changed: %+v", h)
			}
			return nil
		}).
		Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	err := svc.Update(context.Background(), id, domain.UpdateHazardRequest{Severity: &newSeverity})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAdminUpdate_InvalidSeverityRejectedBeforeWrite(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newAdmin(t)

	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	repo.EXPECT().Get(gomock.Any(), id).Return(&domain.Hazard{ID: id, Type: domain.HazardAccident, Severity: 3}, nil).Times(1)

	bad := 0
	err := svc.Update(context.Background(), id, domain.UpdateHazardRequest{Severity: &bad})
	if !errors.Is(err, e.ErrInvalidSeverity) {
		t.Fatalf("expected ErrInvalidSeverity got %v", err)
	}
}

func TestAdminUpdate_NotFound(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newAdmin(t)

	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	repo.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)

	sev := 3
	err := svc.Update(context.Background(), id, domain.UpdateHazardRequest{Severity: &sev})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestAdminDelete_InvalidatesCache(t *testing.T) {
	t.Parallel()

	svc, repo, cache := newAdmin(t)

	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAdminDelete_CacheErrorSwallowed(t *testing.T) {
	t.Parallel()

	svc, repo, cache := newAdmin(t)

	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down")).Times(1)

	// The store write succeeded; a failed invalidation only delays the
	// cache by its TTL.
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
