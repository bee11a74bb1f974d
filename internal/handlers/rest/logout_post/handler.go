package logout_post

import (
	"errors"
	"net/http"

	"portal/internal/pkg/middlewares/session_guard"
	"portal/internal/service/session"
	"portal/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	screens Screens
}

func New(log handlerLogger, service Service, screens Screens) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		screens: screens,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := session_guard.FromContext(r.Context())

	err := h.service.Logout(r.Context(), sess.ID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			h.log.With(
				logger.NewField("session", sess.ID),
				logger.NewField("error", err),
			).Error("logout")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	closed := h.screens.UnmountSession(sess.ID)
	h.log.With(
		logger.NewField("session", sess.ID),
		logger.NewField("tracking_screens_closed", closed),
	).Info("user logged out")

	http.SetCookie(w, &http.Cookie{
		Name:     session_guard.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
