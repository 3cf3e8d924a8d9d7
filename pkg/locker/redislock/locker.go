package redislock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"route-service/pkg/locker"
	"route-service/pkg/logger"
	retrierconfig "route-service/pkg/retrier"
	"route-service/pkg/retrier/backoff_adapter"
)

const (
	keyPrefix = "route-service:lock:"

	initialInterval = 5 * time.Millisecond
	maxInterval     = 100 * time.Millisecond
	randomization   = 0.5
	multiplier      = 1.5

	releaseTimeout = 2 * time.Second
)

var errBusy = errors.New("lock is held by another owner")

// удаляем ключ только если он всё ещё наш
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

// Locker - блокировка по ключу между репликами сервиса (SET NX PX + compare-and-delete).
// ttl ограничивает время жизни ключа, если держатель упал, не освободив его.
type Locker struct {
	log     handlerLogger
	client  redis.Cmdable
	ttl     time.Duration
	retrier retrierconfig.Retrier
}

func New(log handlerLogger, client redis.Cmdable, ttl, maxWait time.Duration) *Locker {
	return &Locker{
		log:    log,
		client: client,
		ttl:    ttl,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxWait,
			Randomization:   randomization,
			Multiplier:      multiplier,
			ShouldRetry: func(err error) bool {
				return errors.Is(err, errBusy)
			},
		}),
	}
}

func (l *Locker) Lock(ctx context.Context, key string) (locker.Unlock, error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	err := l.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return fmt.Errorf("redis setnx: %w", err)
		}
		if !ok {
			return errBusy
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", locker.ErrNotAcquired, key, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// ctx вызывающего мог уже истечь, освобождаем независимо от него
			releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
			defer cancel()

			released, err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Int()
			if err != nil {
				l.log.Error("release redis lock",
					logger.NewField("key", key),
					logger.NewField("error", err),
				)
				return
			}
			if released == 0 {
				l.log.Warn("redis lock expired before release",
					logger.NewField("key", key),
					logger.NewField("ttl", l.ttl),
				)
			}
		})
	}, nil
}
