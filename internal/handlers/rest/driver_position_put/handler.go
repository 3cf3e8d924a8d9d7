package driver_position_put

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"route-service/internal/entities"
	"route-service/internal/handlers/rest/converters"
	"route-service/pkg/logger"
)

// positionBody - обе координаты обязательны, нулевые значения допустимы.
type positionBody struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

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

	var body positionBody
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil || body.Latitude == nil || body.Longitude == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	position := entities.Coordinate{
		Latitude:  *body.Latitude,
		Longitude: *body.Longitude,
	}

	driverEntity, err := h.service.UpdatePosition(r.Context(), id, position)
	if err != nil {
		if status := converters.WriteError(w, err); status >= http.StatusInternalServerError {
			h.log.With(
				logger.NewField("driver_id", id),
				logger.NewField("error", err),
			).Error("update driver position")
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
