package route_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"route-service/internal/entities"
	"route-service/internal/pkg/metrics"
	"route-service/pkg/logger"
	retrierconfig "route-service/pkg/retrier"
	"route-service/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 2 * time.Second
	maxRetries      = 3
	randomization   = 0.5
	multiplier      = 2.0
)

const (
	resultOK     = "ok"
	resultFailed = "failed"
)

// Gateway публикует события жизненного цикла маршрутов. Ключ сообщения - id маршрута,
// поэтому события одного маршрута попадают в одну партицию и читаются по порядку.
// Ошибка доставки логируется и считается, но наружу не уходит: изменение уже закоммичено.
type Gateway struct {
	log      handlerLogger
	producer producer
	topic    string
	retrier  retrierconfig.Retrier
}

func New(log handlerLogger, producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		MaxRetries:      maxRetries,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		log:      log,
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) Publish(ctx context.Context, event entities.RouteEvent) {
	log := g.log.With(
		logger.NewField("event_type", event.Type),
		logger.NewField("route_id", event.RouteID),
		logger.NewField("topic", g.topic),
	)

	partition, offset, err := g.send(ctx, event)
	if err != nil {
		metrics.RouteEventsTotal.WithLabelValues(string(event.Type), resultFailed).Inc()
		log.Error("failed to publish route event", logger.NewField("error", err))
		return
	}

	metrics.RouteEventsTotal.WithLabelValues(string(event.Type), resultOK).Inc()
	log.Info("route event published",
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
}

func (g *Gateway) send(ctx context.Context, event entities.RouteEvent) (int32, int64, error) {
	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		return 0, 0, fmt.Errorf("marshal route event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(event.RouteID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
		Timestamp: event.OccurredAt,
	}

	var (
		partition int32
		offset    int64
		attempt   uint64
	)
	start := time.Now()

	err = g.retrier.ExecuteWithContext(ctx, func(context.Context) error {
		attempt++
		var sendErr error
		partition, offset, sendErr = g.producer.SendMessage(msg)
		return sendErr
	})

	result := resultOK
	if err != nil {
		result = resultFailed
	}
	GatewayRequestDuration.WithLabelValues(g.topic, result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(g.topic, result).Add(float64(attempt - 1))
	}

	if err != nil {
		return 0, 0, fmt.Errorf("send route event after %d attempts: %w", attempt, err)
	}
	return partition, offset, nil
}

// Размер сообщения и ошибки конфигурации повтором не лечатся.
func isRetryable(err error) bool {
	switch {
	case errors.Is(err, sarama.ErrMessageSizeTooLarge),
		errors.Is(err, sarama.ErrInvalidMessage),
		errors.Is(err, sarama.ErrUnknownTopicOrPartition),
		errors.Is(err, sarama.ErrTopicAuthorizationFailed),
		errors.Is(err, sarama.ErrClosedClient):
		return false
	default:
		return true
	}
}

// Nop - публикатор для запуска без Kafka.
type Nop struct{}

func (Nop) Publish(context.Context, entities.RouteEvent) {}
