package route_stop_complete_post

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

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
	vars := mux.Vars(r)
	routeID, requestID := vars["routeId"], vars["requestId"]

	log := h.log.With(
		logger.NewField("route_id", routeID),
		logger.NewField("request_id", requestID),
	)

	completion, err := h.service.CompleteStop(r.Context(), routeID, requestID)
	if err != nil {
		if status := converters.WriteError(w, err); status >= http.StatusInternalServerError {
			log.Error("complete stop", logger.NewField("error", err))
		}
		return
	}

	route, err := converters.Route(*completion.Route)
	if err != nil {
		log.Error("convert route", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.Info("stop completed", logger.NewField("outcome", completion.Outcome.String()))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.StopCompletion{
		Outcome: dto.StopCompletionOutcome(completion.Outcome),
		Route:   route,
	})
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}
