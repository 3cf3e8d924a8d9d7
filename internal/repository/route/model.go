package route

import "time"

type RouteDB struct {
	ID               string
	DriverID         string
	StartLatitude    float64
	StartLongitude   float64
	Waypoints        []WaypointDB
	DeliveryRequests []string
	PathWKB          []byte
	Status           string
	StartTime        time.Time
	EstimatedEndTime time.Time
	ActualEndTime    *time.Time
	TotalDistanceKm  float64
	TotalDurationMs  int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WaypointDB хранится в колонке waypoints (jsonb).
type WaypointDB struct {
	RequestID     string  `json:"request_id"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Type          string  `json:"type"`
	IsPriority    bool    `json:"is_priority"`
	Order         int     `json:"order"`
	LegDistanceKm float64 `json:"leg_distance_km"`
	LegDurationMs int64   `json:"leg_duration_ms"`
}

type RouteModifyDB struct {
	ID               *string
	DriverID         *string
	StartLatitude    *float64
	StartLongitude   *float64
	Waypoints        []WaypointDB
	DeliveryRequests *[]string
	PathWKB          []byte
	Status           *string
	StartTime        *time.Time
	EstimatedEndTime *time.Time
	ActualEndTime    *time.Time
	TotalDistanceKm  *float64
	TotalDurationMs  *int64
}
