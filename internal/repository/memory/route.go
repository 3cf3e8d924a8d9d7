package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"route-service/internal/entities"
)

type RouteRepository struct {
	store *Store
}

func (r *RouteRepository) Create(_ context.Context, m entities.RouteModify) (*entities.Route, error) {
	if m.DriverID == nil || m.Start == nil || m.StartTime == nil || m.EstimatedEndTime == nil {
		return nil, errors.New("memory route create: driver, start and times are required")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.drivers[*m.DriverID]; !ok {
		return nil, entities.ErrDriverNotFound
	}

	now := time.Now().UTC()
	route := entities.Route{
		ID:               uuid.NewString(),
		DriverID:         *m.DriverID,
		Start:            *m.Start,
		Waypoints:        slices.Clone(m.Waypoints),
		DeliveryRequests: []string{},
		Status:           entities.RouteActive,
		StartTime:        *m.StartTime,
		EstimatedEndTime: *m.EstimatedEndTime,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if m.ID != nil {
		route.ID = *m.ID
	}
	if m.DeliveryRequests != nil {
		route.DeliveryRequests = slices.Clone(*m.DeliveryRequests)
	}
	if m.Status != nil {
		route.Status = *m.Status
	}
	if m.TotalDistance != nil {
		route.TotalDistance = *m.TotalDistance
	}
	if m.TotalDuration != nil {
		route.TotalDuration = *m.TotalDuration
	}

	r.store.routes[route.ID] = route
	return cloneRoute(route), nil
}

func (r *RouteRepository) GetByID(_ context.Context, id string) (*entities.Route, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	route, ok := r.store.routes[id]
	if !ok {
		return nil, entities.ErrRouteNotFound
	}
	return cloneRoute(route), nil
}

func (r *RouteRepository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Route, error) {
	return r.GetByID(ctx, id)
}

func (r *RouteRepository) GetActiveByDriver(_ context.Context, driverID string) ([]entities.Route, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]entities.Route, 0)
	for _, route := range r.store.routes {
		if route.DriverID == driverID && route.Status == entities.RouteActive {
			result = append(result, *cloneRoute(route))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartTime.Equal(result[j].StartTime) {
			return result[i].StartTime.Before(result[j].StartTime)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *RouteRepository) Update(_ context.Context, m entities.RouteModify) (*entities.Route, error) {
	if m.ID == nil {
		return nil, entities.ErrRouteNotFound
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	route, ok := r.store.routes[*m.ID]
	if !ok {
		return nil, entities.ErrRouteNotFound
	}

	if m.DeliveryRequests != nil {
		route.DeliveryRequests = slices.Clone(*m.DeliveryRequests)
	}
	if m.Status != nil {
		route.Status = *m.Status
	}
	if m.ActualEndTime != nil {
		route.ActualEndTime = cloneValue(m.ActualEndTime)
	}
	route.UpdatedAt = time.Now().UTC()

	r.store.routes[route.ID] = route
	return cloneRoute(route), nil
}

func (r *RouteRepository) CountOverdue(_ context.Context, now time.Time) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, route := range r.store.routes {
		if route.Status == entities.RouteActive && route.EstimatedEndTime.Before(now) {
			count++
		}
	}
	return count, nil
}

// Наружу отдаём копии срезов, чтобы вызывающий не мог изменить хранимое значение.
func cloneRoute(route entities.Route) *entities.Route {
	route.Waypoints = slices.Clone(route.Waypoints)
	route.DeliveryRequests = slices.Clone(route.DeliveryRequests)
	return &route
}
