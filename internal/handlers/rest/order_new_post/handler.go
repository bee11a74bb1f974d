package order_new_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"portal/internal/controller"
	"portal/internal/generated/dto"
	"portal/internal/handlers/rest/presenter"
	"portal/internal/pkg/middlewares/session_guard"
	"portal/internal/service/order"
	formservice "portal/internal/service/orderform"
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
	var in dto.OrderFormInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := h.controller.Submit(r.Context(), session_guard.FromContext(r.Context()), presenter.FormFromInput("", in))

	status := http.StatusCreated
	if err != nil {
		switch {
		case errors.Is(err, controller.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
			return
		case errors.Is(err, formservice.ErrInvalidForm),
			errors.Is(err, order.ErrRejected):
			status = http.StatusUnprocessableEntity
		default:
			status = http.StatusBadGateway
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(presenter.FormResult(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
