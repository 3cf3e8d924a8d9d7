package memory

import (
	"context"
	"sort"
	"time"

	"route-service/internal/entities"
)

type DriverRepository struct {
	store *Store
}

func (r *DriverRepository) GetByID(_ context.Context, id string) (*entities.Driver, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	d, ok := r.store.drivers[id]
	if !ok {
		return nil, entities.ErrDriverNotFound
	}
	return &d, nil
}

func (r *DriverRepository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Driver, error) {
	return r.GetByID(ctx, id)
}

func (r *DriverRepository) GetAll(_ context.Context, filter entities.DriverFilter) ([]entities.Driver, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]entities.Driver, 0, len(r.store.drivers))
	for _, d := range r.store.drivers {
		if filter.Status != nil && d.Status != *filter.Status {
			continue
		}
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *DriverRepository) Update(_ context.Context, m entities.DriverModify) (*entities.Driver, error) {
	if m.ID == nil {
		return nil, entities.ErrDriverNotFound
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	d, ok := r.store.drivers[*m.ID]
	if !ok {
		return nil, entities.ErrDriverNotFound
	}

	if m.Position != nil {
		position := *m.Position
		d.Position = &position
	}
	if m.Status != nil {
		d.Status = *m.Status
	}
	if m.CurrentDeliveries != nil {
		d.CurrentDeliveries = *m.CurrentDeliveries
	}
	d.UpdatedAt = time.Now().UTC()

	r.store.drivers[d.ID] = d
	return &d, nil
}
