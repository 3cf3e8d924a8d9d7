// Package converters переводит доменные сущности в DTO HTTP API.
package converters

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"route-service/internal/entities"
	"route-service/internal/generated/dto"
	"route-service/internal/pkg/geometry"
)

func Coordinate(c entities.Coordinate) dto.Coordinate {
	return dto.Coordinate{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

func Driver(d entities.Driver) dto.Driver {
	res := dto.Driver{
		Id:                      d.ID,
		Name:                    d.Name,
		VehicleClass:            dto.DriverVehicleClass(d.VehicleClass),
		Status:                  dto.DriverStatus(d.Status),
		CurrentDeliveries:       d.CurrentDeliveries,
		MaxConcurrentDeliveries: d.Capacity(),
	}
	if d.Position != nil {
		position := Coordinate(*d.Position)
		res.Position = &position
	}
	return res
}

func DeliveryRequest(r entities.DeliveryRequest) dto.DeliveryRequest {
	res := dto.DeliveryRequest{
		Id:         r.ID,
		Pickup:     Coordinate(r.Pickup),
		Delivery:   Coordinate(r.Delivery),
		IsPriority: r.IsPriority,
		Status:     dto.DeliveryRequestStatus(r.Status),
		CreatedAt:  r.CreatedAt,
	}
	if r.PickupAddress != "" {
		res.PickupAddress = &r.PickupAddress
	}
	if r.DeliveryAddress != "" {
		res.DeliveryAddress = &r.DeliveryAddress
	}
	return res
}

func PendingRequests(selection entities.PendingSelection) dto.PendingRequests {
	requests := make([]dto.RequestCandidate, len(selection.Candidates))
	for i, c := range selection.Candidates {
		requests[i] = dto.RequestCandidate{
			Request:           DeliveryRequest(c.Request),
			Distance:          c.Distance,
			ApproachDistance:  c.ApproachDistance,
			EstimatedDuration: Seconds(c.EstimatedDuration),
		}
	}

	return dto.PendingRequests{
		MaxSelectable: selection.MaxSelectable,
		Requests:      requests,
	}
}

func OptimizedRoute(r entities.OptimizedRoute) (dto.OptimizedRoute, error) {
	path, err := Path(r.Start, r.Waypoints)
	if err != nil {
		return dto.OptimizedRoute{}, err
	}

	return dto.OptimizedRoute{
		Waypoints:     Waypoints(r.Waypoints),
		TotalDistance: r.TotalDistance,
		TotalDuration: Seconds(r.TotalDuration),
		RequestIds:    nonNil(r.RequestIDs),
		Path:          path,
	}, nil
}

func Route(r entities.Route) (dto.Route, error) {
	path, err := Path(r.Start, r.Waypoints)
	if err != nil {
		return dto.Route{}, err
	}

	return dto.Route{
		Id:               r.ID,
		DriverId:         r.DriverID,
		Start:            Coordinate(r.Start),
		Waypoints:        Waypoints(r.Waypoints),
		DeliveryRequests: nonNil(r.DeliveryRequests),
		Status:           dto.RouteStatus(r.Status),
		StartTime:        r.StartTime,
		EstimatedEndTime: r.EstimatedEndTime,
		ActualEndTime:    r.ActualEndTime,
		TotalDistance:    r.TotalDistance,
		TotalDuration:    Seconds(r.TotalDuration),
		Path:             path,
	}, nil
}

func Routes(routes []entities.Route) ([]dto.Route, error) {
	res := make([]dto.Route, len(routes))
	for i, r := range routes {
		route, err := Route(r)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", r.ID, err)
		}
		res[i] = route
	}
	return res, nil
}

func Waypoints(waypoints []entities.Waypoint) []dto.Waypoint {
	res := make([]dto.Waypoint, len(waypoints))
	for i, w := range waypoints {
		res[i] = dto.Waypoint{
			RequestId:   w.RequestID,
			Location:    Coordinate(w.Location),
			Type:        dto.WaypointType(w.Type),
			IsPriority:  w.IsPriority,
			Order:       w.Order,
			LegDistance: w.LegDistance,
			LegDuration: Seconds(w.LegDuration),
		}
	}
	return res
}

// Path - GeoJSON LineString от старта водителя по порядку остановок.
func Path(start entities.Coordinate, waypoints []entities.Waypoint) (dto.LineString, error) {
	raw, err := geometry.GeoJSON(start, waypoints)
	if err != nil {
		return nil, fmt.Errorf("route path: %w", err)
	}

	var path dto.LineString
	if err := json.Unmarshal(raw, &path); err != nil {
		return nil, fmt.Errorf("decode route path: %w", err)
	}
	return path, nil
}

// Seconds округляет вверх, чтобы ненулевая длительность не превращалась в 0.
func Seconds(d time.Duration) int64 {
	return int64(math.Ceil(d.Seconds()))
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
