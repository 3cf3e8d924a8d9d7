package app

import (
	"route-service/internal/handlers/kafka-consumer/request_events"
	"route-service/internal/handlers/rest/driver_get"
	"route-service/internal/handlers/rest/driver_position_put"
	"route-service/internal/handlers/rest/driver_requests_get"
	"route-service/internal/handlers/rest/driver_routes_get"
	"route-service/internal/handlers/rest/drivers_get"
	"route-service/internal/handlers/rest/route_get"
	"route-service/internal/handlers/rest/route_stop_complete_post"
	"route-service/internal/handlers/rest/routes_optimize_post"
	"route-service/internal/handlers/rest/routes_post"
	"route-service/pkg/background"
	"route-service/pkg/querier"
)

type Application struct {
	ServiceDriver     ServiceDriver
	ServiceRequest    ServiceRequest
	ServiceRoute      ServiceRoute
	Store             *querier.Querier
	BackgroundWorkers *background.Worker
}

type ServiceDriver interface {
	driver_get.Service
	drivers_get.Service
	driver_position_put.Service
}

type ServiceRequest interface {
	driver_requests_get.Service
}

type ServiceRoute interface {
	driver_routes_get.Service
	routes_optimize_post.Service
	routes_post.Service
	route_get.Service
	route_stop_complete_post.Service
}

type WorkerApp struct {
	RequestEventsHandler *request_events.Handler
	Store                *querier.Querier
}
