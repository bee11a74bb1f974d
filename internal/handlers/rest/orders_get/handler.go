package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"portal/internal/controller"
	"portal/internal/controller/orderlist"
	"portal/internal/generated/dto"
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
	view, err := h.controller.Load(r.Context(), session_guard.FromContext(r.Context()))

	status := http.StatusOK
	if err != nil {
		if errors.Is(err, controller.ErrUnauthenticated) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		status = http.StatusBadGateway
	}

	res := dto.OrderListResponse{
		Orders:       []dto.Order{},
		StatusColors: orderlist.StatusColors(),
	}
	if view != nil {
		res.Orders = presenter.Orders(view.Orders)
		res.Notice = presenter.Notice(view.Notice)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
