package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "route-service/internal/app"
	"route-service/internal/handlers/rest/driver_get"
	"route-service/internal/handlers/rest/driver_position_put"
	"route-service/internal/handlers/rest/driver_requests_get"
	"route-service/internal/handlers/rest/driver_routes_get"
	"route-service/internal/handlers/rest/drivers_get"
	"route-service/internal/handlers/rest/healthcheck_head"
	"route-service/internal/handlers/rest/ping_get"
	"route-service/internal/handlers/rest/route_get"
	"route-service/internal/handlers/rest/route_stop_complete_post"
	"route-service/internal/handlers/rest/routes_optimize_post"
	"route-service/internal/handlers/rest/routes_post"
	"route-service/internal/pkg/config"
	"route-service/internal/pkg/dotenv"
	"route-service/internal/pkg/grpcserver"
	"route-service/internal/pkg/kafka"
	metrics_system "route-service/internal/pkg/metrics"
	"route-service/internal/pkg/middlewares/graceful_shutdown"
	"route-service/internal/pkg/middlewares/metrics"
	"route-service/internal/pkg/middlewares/rate_limiter"
	"route-service/internal/pkg/middlewares/timeout"
	"route-service/internal/pkg/postgres"
	"route-service/internal/pkg/redis"
	"route-service/pkg/logger"
	"route-service/pkg/logger/zap_adapter"
)

const grpcHealthRefresh = 10 * time.Second

func main() {
	_, envErr := os.Stat(".env")
	if envErr == nil {
		if err := dotenv.Load(); err != nil {
			stdlog.Fatalf("failed to load .env file: %v", err)
		}
	}

	logCfg, err := config.LoadLogger()
	if err != nil {
		stdlog.Fatalf("failed to read logger config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapterWithOptions(zap_adapter.Options{
		Level: logCfg.Level,
		File: zap_adapter.FileOptions{
			Path:       logCfg.FilePath,
			MaxSizeMB:  logCfg.FileMaxSizeMB,
			MaxBackups: logCfg.FileMaxBackups,
			MaxAgeDays: logCfg.FileMaxAgeDays,
		},
	})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting route-service application")
	if envErr != nil {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				runLog.Error("failed to close redis client", logger.NewField("error", err))
			}
		}()
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	if producer != nil {
		defer func() {
			if err := producer.Close(); err != nil {
				runLog.Error("failed to close kafka producer", logger.NewField("error", err))
			}
		}()
	}

	// фоновые задачи живут до SIGTERM
	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	// основной http сервер

	// gRPC health
	var grpcErr chan error
	if cfg.GRPC.HealthPort != "" {
		healthServer := grpcserver.NewHealthServer(log, businessApp.Store)
		grpcErr = make(chan error, 1)
		go func() {
			defer close(grpcErr)
			if err := healthServer.Serve(ctx, cfg.GRPC.HealthPort, grpcHealthRefresh); err != nil {
				grpcErr <- err
			}
		}()
	}
	// gRPC health

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-grpcErr: // nil канал, если gRPC health выключен
		return fmt.Errorf("grpc health: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, rate_limiter.NewLimiter(cfg.RateLimiterQPS, cfg.RateLimiterBurst)))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.Store)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/driver/{id}", driver_get.New(log, app.ServiceDriver)).Methods("GET")
	router.Handle("/drivers", drivers_get.New(log, app.ServiceDriver)).Methods("GET")
	router.Handle("/driver/{id}/position", driver_position_put.New(log, app.ServiceDriver)).Methods("PUT")
	router.Handle("/driver/{id}/requests", driver_requests_get.New(log, app.ServiceRequest)).Methods("GET")
	router.Handle("/driver/{id}/routes", driver_routes_get.New(log, app.ServiceRoute)).Methods("GET")

	router.Handle("/routes/optimize", routes_optimize_post.New(log, app.ServiceRoute)).Methods("POST")
	router.Handle("/routes", routes_post.New(log, app.ServiceRoute)).Methods("POST")
	router.Handle("/routes/{id}", route_get.New(log, app.ServiceRoute)).Methods("GET")
	router.Handle("/routes/{routeId}/stops/{requestId}/complete", route_stop_complete_post.New(log, app.ServiceRoute)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
