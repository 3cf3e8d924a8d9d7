//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_overdue_test
package route_overdue

import (
	"context"

	"route-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CountOverdueRoutes(ctx context.Context) (int64, error)
}
