package alert

import (
	"fmt"
	"math"
	"strconv"

	"github.com/DevFrancisLab/saferoute/pkg/e"
)

const earthRadiusMeters = 6371000.0

// Distance computes the haversine great-circle distance in meters.
// Symmetric; exactly 0 for identical points.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusMeters * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// ParseLat converts a textual latitude and range-checks it (-90..90).
func ParseLat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("lat %q: %w", s, e.ErrInvalidCoordinates)
	}
	if v < -90 || v > 90 {
		return 0, fmt.Errorf("lat %v out of range: %w", v, e.ErrInvalidCoordinates)
	}
	return v, nil
}

// ParseLng converts a textual longitude and range-checks it (-180..180).
func ParseLng(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("lng %q: %w", s, e.ErrInvalidCoordinates)
	}
	if v < -180 || v > 180 {
		return 0, fmt.Errorf("lng %v out of range: %w", v, e.ErrInvalidCoordinates)
	}
	return v, nil
}
