package route_get

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	routeID := mux.Vars(r)["id"]

	routeEntity, err := h.service.GetRoute(r.Context(), routeID)
	if err != nil {
		if status := converters.WriteError(w, err); status >= http.StatusInternalServerError {
			h.log.With(
				logger.NewField("route_id", routeID),
				logger.NewField("error", err),
			).Error("get route")
		}
		return
	}

	response, err := converters.Route(*routeEntity)
	if err != nil {
		h.log.With(
			logger.NewField("route_id", routeID),
			logger.NewField("error", err),
		).Error("convert route")
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
