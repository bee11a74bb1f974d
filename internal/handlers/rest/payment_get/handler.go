package payment_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"

	"portal/internal/controller"
	"portal/internal/controller/checkout"
	"portal/internal/gateway/rest/moli_api"
	"portal/internal/generated/dto"
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

	state, err := h.controller.Load(r.Context(), session_guard.FromContext(r.Context()), orderID)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, controller.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
			return
		case errors.Is(err, order.ErrOrderNotFound):
			status = http.StatusNotFound
		}
		h.writeJSON(w, status, errorBody(state))
		return
	}

	res := dto.CheckoutState{
		Order:            moli_api.FromDomainOrder(*state.Order),
		PaymentAvailable: state.PaymentAvailable,
		Notice:           presenter.Notice(state.Notice),
	}
	if state.PublicKey != "" {
		res.PublicKey = pointer.To(state.PublicKey)
	}
	h.writeJSON(w, http.StatusOK, res)
}

// errorBody переносит текст уведомления контроллера в тело ошибки.
func errorBody(state *checkout.State) dto.ErrorResponse {
	if state == nil || state.Notice == nil {
		return dto.ErrorResponse{}
	}
	return dto.ErrorResponse{Message: pointer.To(state.Notice.Message)}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
