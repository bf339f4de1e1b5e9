package domain

import "strings"

// Coordinate carries a latitude or longitude exactly as it arrived on the
// wire. Callers send either a JSON number or a quoted string; conversion
// and range checking happen in the alert pipeline so malformed values are
// rejected instead of silently decoding to 0.
type Coordinate string

func (c *Coordinate) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*c = Coordinate(s)
	return nil
}

func (c Coordinate) String() string { return string(c) }

// AlertCheckRequest is the public invocation surface of the pipeline.
type AlertCheckRequest struct {
	DriverPhone  string     `json:"driver_phone" validate:"required,e164"`
	Lat          Coordinate `json:"lat" validate:"required"`
	Lng          Coordinate `json:"lng" validate:"required"`
	RadiusMeters *float64   `json:"radius_meters,omitempty" validate:"omitempty,gt=0,max=10000"`
}
