package domain

import (
	"time"

	"github.com/google/uuid"
)

type HazardType string

const (
	HazardAccident    HazardType = "ACCIDENT"
	HazardBadRoad     HazardType = "BAD_ROAD"
	HazardPedestrians HazardType = "PEDESTRIANS"
	HazardBlackspot   HazardType = "BLACKSPOT"
)

func (t HazardType) Valid() bool {
	switch t {
	case HazardAccident, HazardBadRoad, HazardPedestrians, HazardBlackspot:
		return true
	}
	return false
}

// Label is the human wording used in alert messages.
func (t HazardType) Label() string {
	switch t {
	case HazardAccident:
		return "Accident"
	case HazardBadRoad:
		return "Bad Road"
	case HazardPedestrians:
		return "Pedestrians"
	case HazardBlackspot:
		return "Black Spot"
	}
	return string(t)
}

type Hazard struct {
	ID        uuid.UUID  `json:"id"`
	Type      HazardType `json:"type"`
	Severity  int        `json:"severity"` // 1..5
	Lat       float64    `json:"lat"`      // -90..90
	Lng       float64    `json:"lng"`      // -180..180
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Expired reports whether the hazard's optional expiry has passed.
func (h Hazard) Expired(now time.Time) bool {
	return h.ExpiresAt != nil && !h.ExpiresAt.After(now)
}
