//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_stop_complete_post_test
package route_stop_complete_post

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
	CompleteStop(ctx context.Context, routeID, requestID string) (*entities.StopCompletion, error)
}
