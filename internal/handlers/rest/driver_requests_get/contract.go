//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_requests_get_test
package driver_requests_get

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
	ListPending(ctx context.Context, driverID string, sortKey entities.RequestSortKey) (*entities.PendingSelection, error)
}
