package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"

	"route-service/pkg/logger"
)

const (
	ServiceName = "route-service"

	keepaliveTime    = 5 * time.Minute
	keepaliveTimeout = 3 * time.Second
	stopTimeout      = 5 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthServer отдает grpc.health.v1 для оркестратора; статус зависит от доступности БД.
type HealthServer struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
	pinger Pinger
}

func NewHealthServer(log logger.Logger, pinger Pinger) *HealthServer {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    keepaliveTime,
			Timeout: keepaliveTimeout,
		}),
	)
	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, hs)

	return &HealthServer{
		log:    log.With(logger.NewField("component", "grpc-health")),
		server: server,
		health: hs,
		pinger: pinger,
	}
}

// Refresh выставляет статус сервиса по результату пинга хранилища.
func (s *HealthServer) Refresh(ctx context.Context) {
	status := grpc_health_v1.HealthCheckResponse_SERVING
	if err := s.pinger.Ping(ctx); err != nil {
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
		s.log.Warn("storage ping failed", logger.NewField("error", err))
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Serve блокируется до отмены ctx.
func (s *HealthServer) Serve(ctx context.Context, port string, refreshEvery time.Duration) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("grpc health listen: %w", err)
	}

	s.Refresh(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("grpc health server started", logger.NewField("port", port))
		errCh <- s.server.Serve(lis)
	}()

	ticker := time.NewTicker(refreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.health.Shutdown()
			s.stop()
			return nil
		case err := <-errCh:
			if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return fmt.Errorf("grpc health serve: %w", err)
			}
			return nil
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

func (s *HealthServer) stop() {
	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(stopTimeout):
		s.server.Stop()
	}
	s.log.Info("grpc health server stopped")
}
