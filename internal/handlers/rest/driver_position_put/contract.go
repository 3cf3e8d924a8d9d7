//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_position_put_test
package driver_position_put

import (
	"context"

	"route-service/internal/entities"
	"route-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdatePosition(ctx context.Context, id string, position entities.Coordinate) (*entities.Driver, error)
}
