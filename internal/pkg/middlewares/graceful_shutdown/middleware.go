package graceful_shutdown

import (
	"net/http"
	"sync/atomic"
)

// Middleware отклоняет новые запросы после начала остановки портала.
func Middleware(draining *atomic.Bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if draining.Load() {
				w.Header().Set("Connection", "close")
				http.Error(w, "portal is shutting down", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
