package route_overdue

import (
	"context"
	"time"

	"route-service/internal/pkg/metrics"
	"route-service/pkg/logger"
)

type RouteOverdue struct {
	log      handlerLogger
	service  Service
	interval time.Duration
	timeout  time.Duration
}

func NewRouteOverdue(log handlerLogger, service Service, interval, timeout time.Duration) *RouteOverdue {
	return &RouteOverdue{
		log:      log,
		service:  service,
		interval: interval,
		timeout:  timeout,
	}
}

func (r *RouteOverdue) TTL() time.Duration {
	return r.interval
}

// Do пересчитывает активные маршруты, у которых истекло расчетное время.
// Маршруты не закрываются, только публикуется gauge.
func (r *RouteOverdue) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	overdue, err := r.service.CountOverdueRoutes(ctxWithTimeout)
	if err != nil {
		return err
	}

	metrics.RoutesOverdue.Set(float64(overdue))

	if overdue > 0 {
		r.log.With(
			logger.NewField("overdue_routes", overdue),
		).Warn("route overdue check")
	}

	return nil
}

func (r *RouteOverdue) Info() string {
	return "route overdue check"
}
