//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"
	"time"

	"route-service/internal/entities"
	"route-service/pkg/locker"
)

type RouteRepository interface {
	Create(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error)
	GetByID(ctx context.Context, id string) (*entities.Route, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.Route, error)
	GetActiveByDriver(ctx context.Context, driverID string) ([]entities.Route, error)
	Update(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error)
	CountOverdue(ctx context.Context, now time.Time) (int64, error)
}

type RequestRepository interface {
	GetByID(ctx context.Context, id string) (*entities.DeliveryRequest, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.DeliveryRequest, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.DeliveryRequest, error)
	GetByIDsForUpdate(ctx context.Context, ids []string) ([]entities.DeliveryRequest, error)
	Update(ctx context.Context, requestModify entities.DeliveryRequestModify) (*entities.DeliveryRequest, error)
}

type DriverRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Driver, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.Driver, error)
	Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}

type Builder interface {
	Build(input entities.RoutePlanInput) (*entities.OptimizedRoute, error)
}

type Locker interface {
	Lock(ctx context.Context, key string) (locker.Unlock, error)
}

// EventPublisher публикует события после коммита; ошибки доставки остаются на стороне публикатора.
type EventPublisher interface {
	Publish(ctx context.Context, event entities.RouteEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
