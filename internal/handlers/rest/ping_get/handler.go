package ping_get

import (
	"encoding/json"
	"net/http"

	"route-service/internal/generated/dto"
	"route-service/pkg/logger"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping")),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := pong

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto.PingResponse{Message: &message}); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
