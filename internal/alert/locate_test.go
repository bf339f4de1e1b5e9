package alert_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/DevFrancisLab/saferoute/internal/alert"
	"github.com/DevFrancisLab/saferoute/internal/domain"
)

// hazardAt builds a hazard offset north of the driver by roughly meters.
func hazardAt(id string, typ domain.HazardType, severity int, meters float64) domain.Hazard {
	return domain.Hazard{
		ID:        uuid.MustParse(id),
		Type:      typ,
		Severity:  severity,
		Lat:       nairobiLat + meters/metersPerDegreeLat,
		Lng:       nairobiLng,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFindNearby_RadiusBound(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	hazards := []domain.Hazard{
		hazardAt("11111111-1111-1111-1111-111111111111", domain.HazardAccident, 5, 100),
		hazardAt("22222222-2222-2222-2222-222222222222", domain.HazardBadRoad, 3, 299),
		hazardAt("33333333-3333-3333-3333-333333333333", domain.HazardBlackspot, 4, 400),
	}

	got := alert.FindNearby(nairobiLat, nairobiLng, 300, hazards, now)

	if len(got) != 2 {
		t.Fatalf("expected 2 candidates got %d", len(got))
	}
	if got[0].ID != hazards[0].ID || got[1].ID != hazards[1].ID {
		t.Fatalf("unexpected candidates: %+v", got)
	}
}

func TestFindNearby_SortedByDistance(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	hazards := []domain.Hazard{
		hazardAt("33333333-3333-3333-3333-333333333333", domain.HazardBadRoad, 3, 250),
		hazardAt("11111111-1111-1111-1111-111111111111", domain.HazardAccident, 5, 50),
		hazardAt("22222222-2222-2222-2222-222222222222", domain.HazardBlackspot, 4, 150),
	}

	got := alert.FindNearby(nairobiLat, nairobiLng, 300, hazards, now)

	if len(got) != 3 {
		t.Fatalf("expected 3 candidates got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].DistanceMeters > got[i].DistanceMeters {
			t.Fatalf("not sorted by distance: %+v", got)
		}
	}
	if got[0].ID.String() != "11111111-1111-1111-1111-111111111111" {
		t.Fatalf("closest hazard not first: %+v", got[0])
	}
}

func TestFindNearby_TieBrokenByID(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	// Same position, so both distances are identical.
	a := hazardAt("22222222-2222-2222-2222-222222222222", domain.HazardAccident, 3, 100)
	b := hazardAt("11111111-1111-1111-1111-111111111111", domain.HazardBadRoad, 3, 100)

	got := alert.FindNearby(nairobiLat, nairobiLng, 300, []domain.Hazard{a, b}, now)

	if len(got) != 2 {
		t.Fatalf("expected 2 candidates got %d", len(got))
	}
	if got[0].ID != b.ID {
		t.Fatalf("tie not broken by id: got %s first", got[0].ID)
	}
}

func TestFindNearby_SkipsExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	expired := hazardAt("11111111-1111-1111-1111-111111111111", domain.HazardAccident, 5, 100)
	expired.ExpiresAt = &past

	live := hazardAt("22222222-2222-2222-2222-222222222222", domain.HazardAccident, 4, 100)
	live.ExpiresAt = &future

	exactlyNow := hazardAt("33333333-3333-3333-3333-333333333333", domain.HazardAccident, 4, 100)
	exactlyNow.ExpiresAt = &now

	got := alert.FindNearby(nairobiLat, nairobiLng, 300, []domain.Hazard{expired, live, exactlyNow}, now)

	if len(got) != 1 {
		t.Fatalf("expected only the live hazard got %d: %+v", len(got), got)
	}
	if got[0].ID != live.ID {
		t.Fatalf("wrong survivor: %s", got[0].ID)
	}
}

func TestFindNearby_EmptyInput(t *testing.T) {
	t.Parallel()

	got := alert.FindNearby(nairobiLat, nairobiLng, 300, nil, time.Now())
	if len(got) != 0 {
		t.Fatalf("expected empty got %+v", got)
	}
}
