//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routes_post_test
package routes_post

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
	OptimizeAndCreateRoute(ctx context.Context, driverID string, requestIDs []string) (*entities.Route, error)
}
