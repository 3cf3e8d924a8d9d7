package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RoutesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "routes_created_total",
			Help: "Total number of committed routes",
		},
	)

	RouteBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_build_duration_seconds",
			Help:    "Time spent ordering waypoints for a route",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5},
		},
	)

	StopsCompletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_stops_completed_total",
			Help: "Delivered requests by resulting route outcome",
		},
		[]string{"outcome"},
	)

	RequestsCancelledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_requests_cancelled_total",
			Help: "Cancelled requests by status before cancellation",
		},
		[]string{"from_status"},
	)

	TxConflictRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lifecycle_tx_conflict_retries_total",
			Help: "Lifecycle transactions retried after serialization failure or deadlock",
		},
	)

	RoutesOverdue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "routes_overdue",
			Help: "Active routes past their estimated end time",
		},
	)

	RouteEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_events_published_total",
			Help: "Route lifecycle events by type and publish result",
		},
		[]string{"type", "result"},
	)

	RequestEventsConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "request_events_consumed_total",
			Help: "Consumed delivery request events by result",
		},
		[]string{"result"},
	)
)
