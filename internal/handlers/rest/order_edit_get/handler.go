package order_edit_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"portal/internal/controller"
	"portal/internal/handlers/rest/presenter"
	"portal/internal/pkg/middlewares/session_guard"
	"portal/internal/service/order"
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
	orderID := mux.Vars(r)["id"]
	if orderID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	state, err := h.controller.LoadEdit(r.Context(), session_guard.FromContext(r.Context()), orderID)

	status := http.StatusOK
	if err != nil {
		switch {
		case errors.Is(err, controller.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
			return
		case errors.Is(err, order.ErrOrderNotFound):
			status = http.StatusNotFound
		case errors.Is(err, order.ErrMissingRequired):
			status = http.StatusBadRequest
		default:
			status = http.StatusBadGateway
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(presenter.FormState(state.Form, state.Notice))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
