package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	routeEvents "route-service/internal/gateway/kafka/route_events"
	"route-service/internal/handlers/kafka-consumer/request_events"
	"route-service/internal/handlers/tasks/route_overdue"
	"route-service/internal/pkg/config"
	"route-service/internal/pkg/factory/travel_time"
	"route-service/internal/pkg/metrics"
	driverRepo "route-service/internal/repository/driver"
	requestRepo "route-service/internal/repository/request"
	routeRepo "route-service/internal/repository/route"
	driverService "route-service/internal/service/driver"
	"route-service/internal/service/optimizer"
	requestService "route-service/internal/service/request"
	routeService "route-service/internal/service/route"
	"route-service/pkg/background"
	"route-service/pkg/locker/local"
	"route-service/pkg/locker/redislock"
	"route-service/pkg/logger"
	"route-service/pkg/querier"
	"route-service/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, func(error) { metrics.TxConflictRetriesTotal.Inc() })
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideRequestRepository(querier *querier.Querier) *requestRepo.Repository {
	return requestRepo.New(querier)
}

func provideRouteRepository(querier *querier.Querier) *routeRepo.Repository {
	return routeRepo.New(querier)
}

// provideTravelTimeFactory: скорости из YAML перекрывают значения по умолчанию.
func provideTravelTimeFactory(cfg *config.Config) (*travel_time.TravelTimeFactory, error) {
	speeds, err := config.LoadVehicleSpeeds(cfg.Routing.SpeedsFile)
	if err != nil {
		return nil, fmt.Errorf("vehicle speeds: %w", err)
	}
	return travel_time.New(speeds, cfg.Routing.StopServiceTime), nil
}

func provideRouteBuilder(timeFactory optimizer.TravelTimeFactory) *optimizer.Builder {
	return optimizer.New(timeFactory)
}

// provideLocker: без Redis блокировки действуют только внутри процесса,
// этого достаточно для одной реплики.
func provideLocker(log logger.Logger, client *goredis.Client, cfg *config.Config) routeService.Locker {
	if client == nil {
		log.Warn("redis is not configured, using in-process locker")
		return local.New()
	}
	return redislock.New(
		log.With(logger.NewField("component", "redislock")),
		client,
		cfg.Redis.LockTTL,
		cfg.Routing.LockWaitTimeout,
	)
}

func provideEventPublisher(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) routeService.EventPublisher {
	if producer == nil {
		log.Warn("kafka is not configured, route events are not published")
		return routeEvents.Nop{}
	}
	return routeEvents.New(
		log.With(logger.NewField("component", "route-events")),
		producer,
		cfg.Kafka.RouteEventsTopic,
	)
}

func provideRouteService(
	routes routeService.RouteRepository,
	requests routeService.RequestRepository,
	drivers routeService.DriverRepository,
	builder routeService.Builder,
	locker routeService.Locker,
	publisher routeService.EventPublisher,
	txManager routeService.TxManager,
	cfg *config.Config,
) *routeService.Service {
	return routeService.New(
		routes,
		requests,
		drivers,
		builder,
		locker,
		publisher,
		txManager,
		cfg.Routing.LockWaitTimeout,
	)
}

func provideRequestService(
	repository requestService.Repository,
	drivers requestService.DriverRepository,
	timeFactory requestService.TravelTimeFactory,
) *requestService.Request {
	return requestService.New(repository, drivers, timeFactory)
}

func provideDriverService(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideRouteOverdueTask(
	log logger.Logger,
	service route_overdue.Service,
	cfg *config.Config,
) *route_overdue.RouteOverdue {
	return route_overdue.NewRouteOverdue(
		log,
		service,
		cfg.Tasks.RouteOverdueCheckInterval,
		cfg.Tasks.OverdueCheckTimeout(),
	)
}

func provideTaskList(
	routeOverdueTask *route_overdue.RouteOverdue,
) []background.Task {
	return []background.Task{
		routeOverdueTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideRequestEventsHandler(
	log logger.Logger,
	requests request_events.RequestService,
	routes request_events.RouteService,
	cfg *config.Config,
) *request_events.Handler {
	return request_events.New(log, requests, routes, cfg.Kafka.Handlers.RequestEvents.ProcessTimeout)
}
