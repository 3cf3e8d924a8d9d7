package tx

import (
	"context"
	"errors"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	retrierconfig "route-service/pkg/retrier"
	"route-service/pkg/retrier/backoff_adapter"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
)

const (
	initialInterval = 10 * time.Millisecond
	maxInterval     = 200 * time.Millisecond
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2
	maxRetries      = 5
)

// Manager инкапсулирует логику управления транзакциями.
// Конфликт сериализации и дедлок повторяются целиком, вместе с fn.
type Manager struct {
	internal *manager.Manager
	retrier  retrierconfig.Retrier
}

// New создаёт новый менеджер транзакций. onConflict, если задан,
// вызывается перед каждым повтором транзакции.
func New(db pgxv5.Transactional, onConflict func(err error)) *Manager {
	var notify retrierconfig.NotifyFunc
	if onConflict != nil {
		notify = func(err error, _ time.Duration) { onConflict(err) }
	}

	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			MaxRetries:      maxRetries,
			ShouldRetry:     IsConflict,
			OnRetry:         notify,
		}),
	}
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	})
}

// IsConflict сообщает, что транзакцию можно безопасно повторить.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrSerializationFailure || pgErr.Code == pgErrDeadlockDetected
	}
	return false
}
