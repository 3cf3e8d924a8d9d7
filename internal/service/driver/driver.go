package driver

import (
	"context"
	"fmt"
	"strings"

	"route-service/internal/entities"
	"route-service/internal/pkg/geo"
)

// Driver - чтение водителей и приём их координат. Водители заводятся вне сервиса,
// здесь они не создаются и не удаляются.
type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

func (s *Driver) GetDriver(ctx context.Context, id string) (*entities.Driver, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return driver, nil
}

func (s *Driver) GetDrivers(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *filter.Status)
	}

	drivers, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}
	return drivers, nil
}

// UpdatePosition - последняя известная позиция водителя, от неё строится следующий маршрут.
func (s *Driver) UpdatePosition(ctx context.Context, id string, position entities.Coordinate) (*entities.Driver, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidDriverID
	}
	if err := geo.Validate(position); err != nil {
		return nil, err
	}

	driver, err := s.repository.Update(ctx, entities.DriverModify{
		ID:       &id,
		Position: &position,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update driver position: %w", err)
	}
	return driver, nil
}
