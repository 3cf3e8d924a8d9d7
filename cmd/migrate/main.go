package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"route-service/internal/pkg/config"
	"route-service/internal/pkg/postgres"
	"route-service/migrations"
	"route-service/pkg/logger"
	"route-service/pkg/logger/zap_adapter"
)

// usage: migrate [up|down|status|version|redo|reset] [args...]
func main() {
	flag.Parse()

	command := "up"
	args := flag.Args()
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	log := zapLogger.With(logger.NewField("command", command))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Error("failed to load .env file", logger.NewField("error", err))
		return
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Error("load config", logger.NewField("error", err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, zapLogger, &cfg)
	if err != nil {
		log.Error("database", logger.NewField("error", err))
		return
	}
	defer pool.Close()

	if err := migrations.Run(ctx, pool, command, args...); err != nil {
		log.Error("migration failed", logger.NewField("error", err))
		return
	}
	log.Info("migration finished")
}
