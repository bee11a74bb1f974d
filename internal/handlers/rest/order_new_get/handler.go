package order_new_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"portal/internal/controller"
	"portal/internal/handlers/rest/presenter"
	"portal/internal/pkg/middlewares/session_guard"
	"portal/pkg/logger"
)

type Handler struct {
	log        handlerLogger
	controller Controller
}

func New(log handlerLogger, controller Controller) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		controller: controller,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.NewCreate(session_guard.FromContext(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, controller.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(presenter.FormState(state.Form, state.Notice))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
