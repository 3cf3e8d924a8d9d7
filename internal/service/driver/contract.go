//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"route-service/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Driver, error)
	GetAll(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error)
	Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}
