package driver_routes_get

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
	driverID := mux.Vars(r)["id"]

	routeEntities, err := h.service.GetActiveRoutes(r.Context(), driverID)
	if err != nil {
		if status := converters.WriteError(w, err); status >= http.StatusInternalServerError {
			h.log.With(
				logger.NewField("driver_id", driverID),
				logger.NewField("error", err),
			).Error("get active routes")
		}
		return
	}

	routeDTOs, err := converters.Routes(routeEntities)
	if err != nil {
		h.log.With(
			logger.NewField("driver_id", driverID),
			logger.NewField("error", err),
		).Error("convert routes")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(routeDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
