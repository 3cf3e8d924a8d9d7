package routes_optimize_post

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

// ServeHTTP строит маршрут для просмотра, ничего не сохраняя.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var routeRequestDTO dto.RouteRequest
	err := json.NewDecoder(r.Body).Decode(&routeRequestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	plan, err := h.service.PreviewRoute(r.Context(), routeRequestDTO.DriverId, routeRequestDTO.RequestIds)
	if err != nil {
		if status := converters.WriteError(w, err); status >= http.StatusInternalServerError {
			h.log.With(
				logger.NewField("driver_id", routeRequestDTO.DriverId),
				logger.NewField("error", err),
			).Error("preview route")
		}
		return
	}

	response, err := converters.OptimizedRoute(*plan)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("convert optimized route")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
