package domain

type AlertStats struct {
	DriverCount int64 `json:"driver_count"`
	AlertCount  int64 `json:"alert_count"`
	Minutes     int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // 1 day max
}
