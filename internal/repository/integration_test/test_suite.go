//go:build integration

package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"route-service/internal/pkg/config"
	"route-service/internal/pkg/postgres"
	"route-service/migrations"
	"route-service/pkg/logger/zap_adapter"
	"route-service/pkg/querier"
)

const (
	postgresImage   = "postgres:16-alpine"
	postgresUser    = "routes"
	postgresDB      = "routes"
	startupDeadline = 2 * time.Minute
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// GetQuerier подключается к POSTGRES_HOST, если он задан (Makefile подгружает .env.test),
// иначе поднимает postgres в контейнере. Миграции прогоняются один раз на процесс.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		cfg, err := databaseConfig(ctx)
		if err != nil {
			log.Fatalf("failed to prepare database: %v", err)
		}

		connPool, err := postgres.NewConnPool(ctx, zap_adapter.NewFromZap(zap.NewNop()), &cfg)
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}

		if err := migrations.Run(ctx, connPool, "up"); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func databaseConfig(ctx context.Context) (config.Database, error) {
	if os.Getenv("POSTGRES_HOST") != "" {
		return config.LoadDatabase()
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     postgresUser,
				"POSTGRES_PASSWORD": postgresUser,
				"POSTGRES_DB":       postgresDB,
			},
			// postgres перезапускается после init-скриптов, готов только второй раз
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupDeadline),
		},
		Started: true,
	})
	if err != nil {
		return config.Database{}, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return config.Database{}, err
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return config.Database{}, err
	}

	return config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     postgresUser,
		Password: postgresUser,
		DBName:   postgresDB,
		SSLMode:  "disable",
	}, nil
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE delivery_requests, routes, drivers CASCADE;
	`)
	require.NoError(t, err)
}
