package driver_get

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
	id := mux.Vars(r)["id"]

	driverEntity, err := h.service.GetDriver(r.Context(), id)
	if err != nil {
		if status := converters.WriteError(w, err); status >= http.StatusInternalServerError {
			h.log.With(
				logger.NewField("driver_id", id),
				logger.NewField("error", err),
			).Error("get driver")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(converters.Driver(*driverEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
