package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitedRequestsTotal считает запросы, отклонённые с 429, по шаблону маршрута.
var RateLimitedRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "route_service",
		Subsystem: "http",
		Name:      "rate_limited_requests_total",
		Help:      "Requests rejected with 429 by the token bucket limiter",
	},
	[]string{"method", "route"},
)
