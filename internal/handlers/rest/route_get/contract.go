//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_get_test
package route_get

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
	GetRoute(ctx context.Context, routeID string) (*entities.Route, error)
}
