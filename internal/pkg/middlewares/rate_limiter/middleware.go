package rate_limiter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"portal/internal/generated/dto"
	"portal/internal/pkg/middlewares/metrics"
	"portal/pkg/logger"
)

const rejectedMessage = "Demasiadas solicitudes, intente nuevamente en un momento"

func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RejectedTotal.WithLabelValues(r.Method, route).Inc()
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			message := rejectedMessage
			if err := json.NewEncoder(w).Encode(dto.ErrorResponse{Message: &message}); err != nil {
				log.With(
					logger.NewField("error", err),
				).Error("encode JSON response")
			}
		})
	}
}
