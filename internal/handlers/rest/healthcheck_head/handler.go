package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает 204, пока процесс не начал остановку.
type Handler struct {
	draining *atomic.Bool
}

func New(draining *atomic.Bool) *Handler {
	return &Handler{draining: draining}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.draining.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
