package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/DevFrancisLab/saferoute/internal/domain"
	"github.com/DevFrancisLab/saferoute/internal/service"
	mock_service "github.com/DevFrancisLab/saferoute/internal/service/mocks"
)

func TestCachedHazardSource_CacheHit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mock_service.NewMockHazardCache(ctrl)
	repo := mock_service.NewMockHazardRepository(ctrl)

	want := []domain.Hazard{
		hazardNorth("11111111-1111-1111-1111-111111111111", domain.HazardAccident, 4, 100),
	}

	cache.EXPECT().
		GetActive(gomock.Any()).
		Return(want, nil).
		Times(1)
	// No repo read on a hit.

	src := service.NewCachedHazardSource(cache, repo, time.Minute, testLogger())

	got, err := src.Active(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestCachedHazardSource_MissFallsBackAndRefills(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mock_service.NewMockHazardCache(ctrl)
	repo := mock_service.NewMockHazardRepository(ctrl)

	want := []domain.Hazard{
		hazardNorth("11111111-1111-1111-1111-111111111111", domain.HazardBadRoad, 3, 100),
	}

	cache.EXPECT().GetActive(gomock.Any()).Return(nil, nil).Times(1)
	repo.EXPECT().ListActive(gomock.Any(), gomock.Any()).Return(want, nil).Times(1)
	cache.EXPECT().SetActive(gomock.Any(), want, time.Minute).Return(nil).Times(1)

	src := service.NewCachedHazardSource(cache, repo, time.Minute, testLogger())

	got, err := src.Active(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestCachedHazardSource_CacheErrorDowngraded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mock_service.NewMockHazardCache(ctrl)
	repo := mock_service.NewMockHazardRepository(ctrl)

	want := []domain.Hazard{}

	cache.EXPECT().GetActive(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)
	repo.EXPECT().ListActive(gomock.Any(), gomock.Any()).Return(want, nil).Times(1)
	cache.EXPECT().SetActive(gomock.Any(), want, time.Minute).Return(errors.New("redis down")).Times(1)

	src := service.NewCachedHazardSource(cache, repo, time.Minute, testLogger())

	got, err := src.Active(context.Background())
	if err != nil {
		t.Fatalf("a flaky cache must not fail the read: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %+v want empty", got)
	}
}

func TestCachedHazardSource_RepoErrorPropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mock_service.NewMockHazardCache(ctrl)
	repo := mock_service.NewMockHazardRepository(ctrl)

	wantErr := errors.New("pg down")

	cache.EXPECT().GetActive(gomock.Any()).Return(nil, nil).Times(1)
	repo.EXPECT().ListActive(gomock.Any(), gomock.Any()).Return(nil, wantErr).Times(1)

	src := service.NewCachedHazardSource(cache, repo, time.Minute, testLogger())

	_, err := src.Active(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v got %v", wantErr, err)
	}
}
