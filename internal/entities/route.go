package entities

import (
	"slices"
	"time"
)

type WaypointType string

const (
	WaypointPickup   WaypointType = "pickup"
	WaypointDelivery WaypointType = "delivery"
)

func (t WaypointType) String() string {
	return string(t)
}

// Waypoint - остановка маршрута. Order начинается с 1, 0 занят стартовой точкой водителя.
type Waypoint struct {
	RequestID   string
	Location    Coordinate
	Type        WaypointType
	IsPriority  bool
	Order       int
	LegDistance float64 // км от предыдущей точки
	LegDuration time.Duration
}

type RouteStatus string

const (
	RouteActive    RouteStatus = "active"
	RouteCompleted RouteStatus = "completed"
)

func (s RouteStatus) String() string {
	return string(s)
}

type Route struct {
	ID               string
	DriverID         string
	Start            Coordinate
	Waypoints        []Waypoint
	DeliveryRequests []string
	Status           RouteStatus
	StartTime        time.Time
	EstimatedEndTime time.Time
	ActualEndTime    *time.Time
	TotalDistance    float64 // км
	TotalDuration    time.Duration
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (r *Route) HasPendingRequest(requestID string) bool {
	return slices.Contains(r.DeliveryRequests, requestID)
}

type RouteModify struct {
	ID               *string
	DriverID         *string
	Start            *Coordinate
	Waypoints        []Waypoint
	DeliveryRequests *[]string
	Status           *RouteStatus
	StartTime        *time.Time
	EstimatedEndTime *time.Time
	ActualEndTime    *time.Time
	TotalDistance    *float64
	TotalDuration    *time.Duration
}

// OptimizedRoute - результат построения, ещё не сохранён.
type OptimizedRoute struct {
	Start         Coordinate
	Waypoints     []Waypoint
	TotalDistance float64
	TotalDuration time.Duration
	RequestIDs    []string
}

type RoutePlanInput struct {
	DriverPosition    *Coordinate
	VehicleClass      VehicleClass
	Requests          []DeliveryRequest
	RemainingCapacity int
}

type StopOutcome string

const (
	RouteStillActive StopOutcome = "route_still_active"
	RouteClosed      StopOutcome = "route_completed"
)

func (o StopOutcome) String() string {
	return string(o)
}

type StopCompletion struct {
	Outcome StopOutcome
	Route   *Route
}

type RouteEventType string

const (
	RouteEventCreated          RouteEventType = "route.created"
	RouteEventStopCompleted    RouteEventType = "route.stop_completed"
	RouteEventRequestCancelled RouteEventType = "route.request_cancelled"
	RouteEventCompleted        RouteEventType = "route.completed"
)

type RouteEvent struct {
	Type       RouteEventType
	RouteID    string
	DriverID   string
	RequestIDs []string
	OccurredAt time.Time
}
