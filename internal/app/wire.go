//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"route-service/internal/handlers/kafka-consumer/request_events"
	"route-service/internal/handlers/tasks/route_overdue"
	"route-service/internal/pkg/config"
	"route-service/internal/pkg/factory/travel_time"
	driverRepo "route-service/internal/repository/driver"
	requestRepo "route-service/internal/repository/request"
	routeRepo "route-service/internal/repository/route"
	driverService "route-service/internal/service/driver"
	"route-service/internal/service/optimizer"
	requestService "route-service/internal/service/request"
	routeService "route-service/internal/service/route"
	"route-service/pkg/logger"
	"route-service/pkg/tx"
)

var storeSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideDriverRepository,
	provideRequestRepository,
	provideRouteRepository,

	wire.Bind(new(routeService.TxManager), new(*tx.Manager)),
	wire.Bind(new(routeService.RouteRepository), new(*routeRepo.Repository)),
	wire.Bind(new(routeService.RequestRepository), new(*requestRepo.Repository)),
	wire.Bind(new(routeService.DriverRepository), new(*driverRepo.Repository)),
	wire.Bind(new(requestService.Repository), new(*requestRepo.Repository)),
	wire.Bind(new(requestService.DriverRepository), new(*driverRepo.Repository)),
	wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
)

var routingSet = wire.NewSet(
	provideTravelTimeFactory,
	provideRouteBuilder,
	provideLocker,
	provideEventPublisher,

	provideRouteService,
	provideRequestService,

	wire.Bind(new(optimizer.TravelTimeFactory), new(*travel_time.TravelTimeFactory)),
	wire.Bind(new(requestService.TravelTimeFactory), new(*travel_time.TravelTimeFactory)),
	wire.Bind(new(routeService.Builder), new(*optimizer.Builder)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		storeSet,
		routingSet,
		provideDriverService,

		provideRouteOverdueTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceRequest), new(*requestService.Request)),
		wire.Bind(new(ServiceRoute), new(*routeService.Service)),
		wire.Bind(new(route_overdue.Service), new(*routeService.Service)),
	)
	return &Application{}, nil
}

// InitializeWorkerApp для Kafka воркера (cmd/worker-request-events)
func InitializeWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*WorkerApp, error) {
	wire.Build(
		storeSet,
		routingSet,
		provideRequestEventsHandler,

		wire.Struct(new(WorkerApp), "*"),

		wire.Bind(new(request_events.RequestService), new(*requestService.Request)),
		wire.Bind(new(request_events.RouteService), new(*routeService.Service)),
	)
	return &WorkerApp{}, nil
}
