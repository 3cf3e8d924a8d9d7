//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_test
package request

import (
	"context"
	"time"

	"route-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, requestModify entities.DeliveryRequestModify) (*entities.DeliveryRequest, error)
	GetPending(ctx context.Context) ([]entities.DeliveryRequest, error)
}

type DriverRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Driver, error)
}

type TravelTimeFactory interface {
	EstimateDuration(vehicle entities.VehicleClass, distanceKm float64) time.Duration
}
