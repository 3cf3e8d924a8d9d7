package drivers_get

import (
	"encoding/json"
	"net/http"

	"route-service/internal/entities"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var filter entities.DriverFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := entities.DriverStatus(raw)
		filter.Status = &status
	}

	driverEntities, err := h.service.GetDrivers(r.Context(), filter)
	if err != nil {
		if status := converters.WriteError(w, err); status >= http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
			).Error("get drivers")
		}
		return
	}

	driverDTOs := make([]dto.Driver, len(driverEntities))
	for i, d := range driverEntities {
		driverDTOs[i] = converters.Driver(d)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(driverDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
