// Package session_guard восстанавливает сессию по токену и кладет ее в контекст запроса.
package session_guard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"portal/internal/entities"
	"portal/internal/generated/dto"
	"portal/internal/service/session"
	"portal/pkg/logger"
)

const CookieName = "moli_session"

type ctxKey struct{}

func WithSession(ctx context.Context, sess entities.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext возвращает сессию запроса, пустую если guard не применялся.
func FromContext(ctx context.Context) entities.Session {
	sess, _ := ctx.Value(ctxKey{}).(entities.Session)
	return sess
}

// TokenFromRequest берет токен из Authorization: Bearer, затем из cookie.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func Middleware(log handlerLogger, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := auth.Authenticate(r.Context(), TokenFromRequest(r))
			if err != nil {
				if errors.Is(err, session.ErrUnauthenticated) || errors.Is(err, session.ErrCorruptedEntry) {
					writeError(w, log, http.StatusUnauthorized, "unauthenticated")
					return
				}

				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Error("restore session")
				writeError(w, log, http.StatusInternalServerError, "session unavailable")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

func writeError(w http.ResponseWriter, log handlerLogger, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{Message: &message})
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
