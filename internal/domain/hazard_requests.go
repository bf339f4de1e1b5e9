package domain

import "time"

type CreateHazardRequest struct {
	Type      HazardType `json:"type" validate:"required,oneof=ACCIDENT BAD_ROAD PEDESTRIANS BLACKSPOT"`
	Severity  int        `json:"severity" validate:"required,severity"`
	Lat       float64    `json:"lat" validate:"lat"`
	Lng       float64    `json:"lng" validate:"lng"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type UpdateHazardRequest struct {
	Type      *HazardType `json:"type" validate:"omitempty,oneof=ACCIDENT BAD_ROAD PEDESTRIANS BLACKSPOT"`
	Severity  *int        `json:"severity" validate:"omitempty,severity"`
	Lat       *float64    `json:"lat" validate:"omitempty,lat"`
	Lng       *float64    `json:"lng" validate:"omitempty,lng"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty"`
}

type ListHazardsRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

type ListHazardsResponse struct {
	Hazards []Hazard `json:"hazards"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Total   int64    `json:"total"`
}
