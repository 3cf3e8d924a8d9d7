package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"route-service/internal/pkg/config"
	"route-service/pkg/logger"
	retrierconfig "route-service/pkg/retrier"
	"route-service/pkg/retrier/backoff_adapter"
)

const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second

	initialInterval = time.Second
	maxInterval     = 10 * time.Second
	maxElapsedTime  = time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewClient возвращает nil без ошибки, если адрес Redis не задан.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.Redis) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	redisLog := log.With(
		logger.NewField("component", "redis"),
		logger.NewField("addr", cfg.Addr),
	)

	if err := ping(ctx, redisLog, client); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			return nil, fmt.Errorf("redis connection: %w (failed to close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("redis connection: %w", err)
	}

	return client, nil
}

func ping(ctx context.Context, log logger.Logger, client *goredis.Client) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.Info("pinging redis", logger.NewField("attempt", attempt))
		return client.Ping(ctx).Err()
	})
	if err != nil {
		log.Error("redis unreachable after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info("redis connection established", logger.NewField("attempts", attempt))
	return nil
}
