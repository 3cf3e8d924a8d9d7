package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"route-service/internal/pkg/config"
	"route-service/pkg/logger"
)

const (
	producerRetryMax     = 3
	producerRetryBackoff = 200 * time.Millisecond
	producerTimeout      = 5 * time.Second
)

func NewProducerConfig(versionStr string) (*sarama.Config, error) {
	version, err := parseVersion(versionStr)
	if err != nil {
		return nil, err
	}

	cfg := sarama.NewConfig()
	cfg.Version = version
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Retry.Max = producerRetryMax
	cfg.Producer.Retry.Backoff = producerRetryBackoff
	cfg.Producer.Timeout = producerTimeout
	cfg.Producer.Return.Successes = true
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	return cfg, nil
}

// NewSyncProducer возвращает nil без ошибки, если брокеры не заданы: события маршрутов опциональны.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	if cfg.Brokers == "" {
		return nil, nil
	}

	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	brokers := Brokers(cfg.Brokers)
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.RouteEventsTopic),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}
	return producer, nil
}
