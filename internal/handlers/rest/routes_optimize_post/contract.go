//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routes_optimize_post_test
package routes_optimize_post

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
	PreviewRoute(ctx context.Context, driverID string, requestIDs []string) (*entities.OptimizedRoute, error)
}
