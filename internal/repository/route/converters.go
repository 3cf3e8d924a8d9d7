package route

import (
	"time"

	"route-service/internal/entities"
)

func ToDomain(r *RouteDB) *entities.Route {
	if r == nil {
		return nil
	}

	waypoints := make([]entities.Waypoint, len(r.Waypoints))
	for i, wp := range r.Waypoints {
		waypoints[i] = entities.Waypoint{
			RequestID: wp.RequestID,
			Location: entities.Coordinate{
				Latitude:  wp.Latitude,
				Longitude: wp.Longitude,
			},
			Type:        entities.WaypointType(wp.Type),
			IsPriority:  wp.IsPriority,
			Order:       wp.Order,
			LegDistance: wp.LegDistanceKm,
			LegDuration: time.Duration(wp.LegDurationMs) * time.Millisecond,
		}
	}

	deliveryRequests := r.DeliveryRequests
	if deliveryRequests == nil {
		deliveryRequests = []string{}
	}

	return &entities.Route{
		ID:       r.ID,
		DriverID: r.DriverID,
		Start: entities.Coordinate{
			Latitude:  r.StartLatitude,
			Longitude: r.StartLongitude,
		},
		Waypoints:        waypoints,
		DeliveryRequests: deliveryRequests,
		Status:           entities.RouteStatus(r.Status),
		StartTime:        r.StartTime,
		EstimatedEndTime: r.EstimatedEndTime,
		ActualEndTime:    r.ActualEndTime,
		TotalDistance:    r.TotalDistanceKm,
		TotalDuration:    time.Duration(r.TotalDurationMs) * time.Millisecond,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func FromDomainWaypoints(waypoints []entities.Waypoint) []WaypointDB {
	if waypoints == nil {
		return nil
	}

	result := make([]WaypointDB, len(waypoints))
	for i, wp := range waypoints {
		result[i] = WaypointDB{
			RequestID:     wp.RequestID,
			Latitude:      wp.Location.Latitude,
			Longitude:     wp.Location.Longitude,
			Type:          wp.Type.String(),
			IsPriority:    wp.IsPriority,
			Order:         wp.Order,
			LegDistanceKm: wp.LegDistance,
			LegDurationMs: wp.LegDuration.Milliseconds(),
		}
	}
	return result
}

func FromDomainModify(m *entities.RouteModify) *RouteModifyDB {
	if m == nil {
		return nil
	}

	modifyDB := &RouteModifyDB{
		ID:               m.ID,
		DriverID:         m.DriverID,
		Waypoints:        FromDomainWaypoints(m.Waypoints),
		DeliveryRequests: m.DeliveryRequests,
		StartTime:        m.StartTime,
		EstimatedEndTime: m.EstimatedEndTime,
		ActualEndTime:    m.ActualEndTime,
		TotalDistanceKm:  m.TotalDistance,
	}
	if m.Start != nil {
		modifyDB.StartLatitude = &m.Start.Latitude
		modifyDB.StartLongitude = &m.Start.Longitude
	}
	if m.Status != nil {
		status := m.Status.String()
		modifyDB.Status = &status
	}
	if m.TotalDuration != nil {
		ms := m.TotalDuration.Milliseconds()
		modifyDB.TotalDurationMs = &ms
	}
	return modifyDB
}

func ToDomainList(routesDB []RouteDB) []entities.Route {
	result := make([]entities.Route, len(routesDB))
	for i := range routesDB {
		result[i] = *ToDomain(&routesDB[i])
	}
	return result
}
