package routes_post

import (
	"encoding/json"
	"net/http"

	"route-service/internal/generated/dto"
	"route-service/internal/handlers/rest/converters"
	"route-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP строит маршрут и фиксирует его за водителем одной транзакцией.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var routeRequestDTO dto.RouteRequest
	err := json.NewDecoder(r.Body).Decode(&routeRequestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	log := h.log.With(logger.NewField("driver_id", routeRequestDTO.DriverId))

	routeEntity, err := h.service.OptimizeAndCreateRoute(r.Context(), routeRequestDTO.DriverId, routeRequestDTO.RequestIds)
	if err != nil {
		status := converters.WriteError(w, err)
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("create route", logger.NewField("error", err))
		case status == http.StatusConflict:
			log.Warn("route rejected", logger.NewField("error", err))
		}
		return
	}

	response, err := converters.Route(*routeEntity)
	if err != nil {
		log.Error("convert route", logger.NewField("route_id", routeEntity.ID), logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.Info("route created",
		logger.NewField("route_id", routeEntity.ID),
		logger.NewField("requests", len(routeEntity.DeliveryRequests)),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}
