package rate_limiter

import (
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"route-service/internal/pkg/middlewares/metrics"
	"route-service/pkg/logger"
)

// NewLimiter - token bucket на qps событий в секунду с заданным burst.
func NewLimiter(qps, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(qps), burst)
}

func Middleware(log handlerLogger, rateLimiterQPS int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			RateLimitedRequestsTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(`{"error":"rate limit exceeded, try again later"}`))
			if err != nil {
				log.Error("failed to write rate limit response",
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				)
			}
		})
	}
}
