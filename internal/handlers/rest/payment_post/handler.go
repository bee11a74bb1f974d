package payment_post

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

	res, err := h.controller.Process(r.Context(), session_guard.FromContext(r.Context()), orderID)

	status := http.StatusOK
	if err != nil {
		switch {
		case errors.Is(err, controller.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
			return
		case errors.Is(err, checkout.ErrPaymentUnavailable):
			status = http.StatusServiceUnavailable
		case errors.Is(err, order.ErrOrderNotFound):
			status = http.StatusNotFound
		default:
			status = http.StatusBadGateway
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(toDTO(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(res *checkout.Result) dto.CheckoutResult {
	out := dto.CheckoutResult{}
	if res == nil {
		return out
	}

	out.Notice = presenter.Notice(res.Notice)
	if res.Payment != nil {
		out.Payment = pointer.To(moli_api.FromDomainPayment(*res.Payment))
	}
	if res.PreferenceID != "" {
		out.PreferenceID = pointer.To(res.PreferenceID)
	}
	if res.RedirectTo != "" {
		out.RedirectTo = pointer.To(res.RedirectTo)
	}
	return out
}
