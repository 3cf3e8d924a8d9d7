package request_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"route-service/internal/entities"
	"route-service/internal/pkg/geo"
	"route-service/internal/pkg/metrics"
	requestservice "route-service/internal/service/request"
	routeservice "route-service/internal/service/route"
	"route-service/pkg/logger"
)

const (
	resultProcessed  = "processed"
	resultDuplicate  = "duplicate"
	resultRejected   = "rejected"
	resultBadMessage = "bad_message"
	resultRetry      = "retry"
)

var errUnknownEventType = errors.New("unknown event type")

// Handler применяет события заявок из клиентских каналов: создание и отмену.
type Handler struct {
	requests                 RequestService
	routes                   RouteService
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, requests RequestService, routes RouteService, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "request_events"))

	return &Handler{
		requests:                 requests,
		routes:                   routes,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("request events: claim closed, exiting ConsumeClaim")
				return nil
			}

			if retry := h.messageProcessing(sess, message); retry {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("request events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если сообщение не закоммичено и claim нужно
// отпустить: после ребалансировки оно придёт снова с того же offset.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event requestEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		metrics.RequestEventsConsumedTotal.WithLabelValues(resultBadMessage).Inc()
		h.log.With(
			logger.NewField("offset", message.Offset),
			logger.NewField("error", err),
		).Error("request events: bad message")
		sess.MarkMessage(message, "")
		return false
	}

	if event.Type == eventRequestCreated && event.RequestID == "" {
		event.RequestID = messageRequestID(message)
	}

	msgLog := h.log.With(
		logger.NewField("type", event.Type),
		logger.NewField("request_id", event.RequestID),
		logger.NewField("offset", message.Offset),
	)

	result, err := h.apply(ctx, event)
	if err != nil {
		if isRetryable(err) {
			metrics.RequestEventsConsumedTotal.WithLabelValues(resultRetry).Inc()
			msgLog.Warn("request events: will be reprocessed", logger.NewField("error", err))
			return true
		}

		metrics.RequestEventsConsumedTotal.WithLabelValues(resultRejected).Inc()
		msgLog.Warn("request events: rejected", logger.NewField("error", err))
		sess.MarkMessage(message, "")
		return false
	}

	metrics.RequestEventsConsumedTotal.WithLabelValues(result).Inc()
	msgLog.Info("request events: " + result)
	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) apply(ctx context.Context, event requestEvent) (string, error) {
	switch event.Type {
	case eventRequestCreated:
		_, created, err := h.requests.Ingest(ctx, event.toModify())
		if err != nil {
			return "", fmt.Errorf("ingest request: %w", err)
		}
		if !created {
			return resultDuplicate, nil
		}
		return resultProcessed, nil

	case eventRequestCancelled:
		if _, err := h.routes.CancelRequest(ctx, event.RequestID); err != nil {
			return "", fmt.Errorf("cancel request: %w", err)
		}
		return resultProcessed, nil

	default:
		return "", fmt.Errorf("%w: %q", errUnknownEventType, event.Type)
	}
}

// isRetryable - ошибки содержимого события повтором не исправить, всё остальное
// (сбой хранилища, таймаут) ретраится.
func isRetryable(err error) bool {
	switch {
	case errors.Is(err, errUnknownEventType),
		errors.Is(err, geo.ErrInvalidCoordinate),
		errors.Is(err, requestservice.ErrMissingRequiredFields),
		errors.Is(err, requestservice.ErrInvalidRequestID),
		errors.Is(err, routeservice.ErrInvalidID),
		errors.Is(err, entities.ErrRequestNotFound):
		return false
	default:
		return true
	}
}
