// Package role_guard пропускает запрос, только если роль сессии разрешена для маршрута.
package role_guard

import (
	"net/http"

	"portal/internal/pkg/middlewares/session_guard"
	"portal/pkg/logger"
)

func Middleware(log handlerLogger, enforcer Enforcer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session_guard.FromContext(r.Context())
			if !sess.IsAuthenticated() {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			role := sess.User.Role.String()
			allowed, err := enforcer.Enforce(role, r.URL.Path, r.Method)
			if err != nil {
				log.With(
					logger.NewField("role", role),
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Error("enforce role policy")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			if !allowed {
				log.With(
					logger.NewField("role", role),
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
				).Warn("access denied")
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
