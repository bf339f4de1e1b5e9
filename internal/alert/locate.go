package alert

import (
	"sort"
	"time"

	"github.com/DevFrancisLab/saferoute/internal/domain"
)

// FindNearby returns the hazards within radiusMeters of the driver as
// candidates sorted ascending by distance, ties broken by hazard id so the
// order is deterministic. Hazards whose expiry has passed are skipped.
//
// This is a plain O(n) scan over the active set, which is fine at the
// scale the service targets; an indexed spatial query would keep the same
// contract.
func FindNearby(driverLat, driverLng, radiusMeters float64, hazards []domain.Hazard, now time.Time) []domain.AlertCandidate {
	nearby := make([]domain.AlertCandidate, 0, len(hazards))
	for _, h := range hazards {
		if h.Expired(now) {
			continue
		}
		dist := Distance(driverLat, driverLng, h.Lat, h.Lng)
		if dist <= radiusMeters {
			nearby = append(nearby, domain.AlertCandidate{
				Hazard:         h,
				DistanceMeters: dist,
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceMeters != nearby[j].DistanceMeters {
			return nearby[i].DistanceMeters < nearby[j].DistanceMeters
		}
		return nearby[i].ID.String() < nearby[j].ID.String()
	})

	return nearby
}
