package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const pingTimeout = time.Second

// Handler отвечает 503, пока сервис останавливается или хранилище не отвечает.
type Handler struct {
	isShuttingDown *atomic.Bool
	store          Pinger
}

// New: store может быть nil, тогда проверяется только остановка.
func New(isShuttingDown *atomic.Bool, store Pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		store:          store,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.store.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
