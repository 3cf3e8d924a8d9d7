package retrier

import (
	"context"
	"time"
)

// Retrier повторяет fn, пока она возвращает ошибку, по политике из Config.
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждой повторной попыткой.
type NotifyFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// 0 - без ограничения по числу попыток, работает только MaxElapsedTime
	MaxRetries uint64

	// nil - повторяются все ошибки
	ShouldRetry ShouldRetryFunc

	// nil - повторы молчаливые
	OnRetry NotifyFunc
}
