//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_events_test
package request_events

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

type RequestService interface {
	Ingest(ctx context.Context, requestModify entities.DeliveryRequestModify) (*entities.DeliveryRequest, bool, error)
}

type RouteService interface {
	CancelRequest(ctx context.Context, requestID string) (*entities.DeliveryRequest, error)
}
