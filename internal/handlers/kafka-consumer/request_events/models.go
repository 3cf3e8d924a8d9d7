package request_events

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"route-service/internal/entities"
)

const (
	eventRequestCreated   = "request.created"
	eventRequestCancelled = "request.cancelled"
)

type coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type requestEvent struct {
	Type            string      `json:"type"`
	RequestID       string      `json:"request_id"`
	Pickup          *coordinate `json:"pickup,omitempty"`
	PickupAddress   string      `json:"pickup_address,omitempty"`
	Delivery        *coordinate `json:"delivery,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	IsPriority      bool        `json:"is_priority,omitempty"`
	CreatedAt       *time.Time  `json:"created_at,omitempty"`
}

func (e requestEvent) toModify() entities.DeliveryRequestModify {
	modify := entities.DeliveryRequestModify{
		ID:         &e.RequestID,
		IsPriority: &e.IsPriority,
		CreatedAt:  e.CreatedAt,
	}
	if e.Pickup != nil {
		modify.Pickup = &entities.Coordinate{Latitude: e.Pickup.Latitude, Longitude: e.Pickup.Longitude}
	}
	if e.Delivery != nil {
		modify.Delivery = &entities.Coordinate{Latitude: e.Delivery.Latitude, Longitude: e.Delivery.Longitude}
	}
	if e.PickupAddress != "" {
		modify.PickupAddress = &e.PickupAddress
	}
	if e.DeliveryAddress != "" {
		modify.DeliveryAddress = &e.DeliveryAddress
	}
	return modify
}

// messageRequestID выводит id заявки из координат сообщения в топике,
// поэтому повторная доставка того же сообщения даёт тот же id.
func messageRequestID(message *sarama.ConsumerMessage) string {
	name := fmt.Sprintf("kafka://%s/%d/%d", message.Topic, message.Partition, message.Offset)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}
