package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"time"

	"route-service/internal/entities"
)

type RequestRepository struct {
	store *Store
}

func (r *RequestRepository) Create(_ context.Context, m entities.DeliveryRequestModify) (*entities.DeliveryRequest, error) {
	if m.ID == nil || m.Pickup == nil || m.Delivery == nil {
		return nil, errors.New("memory request create: id and coordinates are required")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.requests[*m.ID]; ok {
		return nil, entities.ErrRequestAlreadyExists
	}

	now := time.Now().UTC()
	req := entities.DeliveryRequest{
		ID:         *m.ID,
		Pickup:     *m.Pickup,
		Delivery:   *m.Delivery,
		IsPriority: m.IsPriority != nil && *m.IsPriority,
		Status:     entities.RequestPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if m.PickupAddress != nil {
		req.PickupAddress = *m.PickupAddress
	}
	if m.DeliveryAddress != nil {
		req.DeliveryAddress = *m.DeliveryAddress
	}
	if m.CreatedAt != nil {
		req.CreatedAt = *m.CreatedAt
	}

	r.store.requests[req.ID] = req
	return &req, nil
}

func (r *RequestRepository) GetByID(_ context.Context, id string) (*entities.DeliveryRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	req, ok := r.store.requests[id]
	if !ok {
		return nil, entities.ErrRequestNotFound
	}
	return &req, nil
}

func (r *RequestRepository) GetByIDForUpdate(ctx context.Context, id string) (*entities.DeliveryRequest, error) {
	return r.GetByID(ctx, id)
}

func (r *RequestRepository) GetByIDsForUpdate(ctx context.Context, ids []string) ([]entities.DeliveryRequest, error) {
	return r.GetByIDs(ctx, ids)
}

func (r *RequestRepository) GetByIDs(_ context.Context, ids []string) ([]entities.DeliveryRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	result := make([]entities.DeliveryRequest, 0, len(sorted))
	for _, id := range sorted {
		if req, ok := r.store.requests[id]; ok {
			result = append(result, req)
		}
	}
	return result, nil
}

func (r *RequestRepository) GetPending(_ context.Context) ([]entities.DeliveryRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]entities.DeliveryRequest, 0)
	for _, req := range r.store.requests {
		if req.IsSelectable() {
			result = append(result, req)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *RequestRepository) Update(_ context.Context, m entities.DeliveryRequestModify) (*entities.DeliveryRequest, error) {
	if m.ID == nil {
		return nil, entities.ErrRequestNotFound
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	req, ok := r.store.requests[*m.ID]
	if !ok {
		return nil, entities.ErrRequestNotFound
	}

	if m.Status != nil {
		req.Status = *m.Status
	}
	if m.AssignedDriverID != nil {
		req.AssignedDriverID = cloneValue(m.AssignedDriverID)
	}
	if m.BatchID != nil {
		req.BatchID = cloneValue(m.BatchID)
	}
	if m.AcceptedAt != nil {
		req.AcceptedAt = cloneValue(m.AcceptedAt)
	}
	if m.DeliveredAt != nil {
		req.DeliveredAt = cloneValue(m.DeliveredAt)
	}
	if m.CancelledAt != nil {
		req.CancelledAt = cloneValue(m.CancelledAt)
	}
	if m.IsPriority != nil {
		req.IsPriority = *m.IsPriority
	}
	req.UpdatedAt = time.Now().UTC()

	r.store.requests[req.ID] = req
	return &req, nil
}

func cloneValue[T any](v *T) *T {
	c := *v
	return &c
}
