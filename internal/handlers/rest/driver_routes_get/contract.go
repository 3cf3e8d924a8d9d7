//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_routes_get_test
package driver_routes_get

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
	GetActiveRoutes(ctx context.Context, driverID string) ([]entities.Route, error)
}
