package route_events

import (
	"time"

	"route-service/internal/entities"
)

type routeEventMessage struct {
	Type       string    `json:"type"`
	RouteID    string    `json:"route_id"`
	DriverID   string    `json:"driver_id"`
	RequestIDs []string  `json:"request_ids,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toMessage(event entities.RouteEvent) routeEventMessage {
	return routeEventMessage{
		Type:       string(event.Type),
		RouteID:    event.RouteID,
		DriverID:   event.DriverID,
		RequestIDs: event.RequestIDs,
		OccurredAt: event.OccurredAt,
	}
}
