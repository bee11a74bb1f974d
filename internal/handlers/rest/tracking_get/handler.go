package tracking_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"portal/internal/controller"
	"portal/internal/controller/tracking"
	"portal/internal/generated/dto"
	"portal/internal/handlers/rest/presenter"
	"portal/internal/pkg/middlewares/session_guard"
	"portal/internal/service/order"
	"portal/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	screens Screens
}

func New(log handlerLogger, screens Screens) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		screens: screens,
	}
}

// ServeHTTP открывает экран при первом запросе и отдает текущий снимок.
// С ?refresh=true местоположение перечитывается немедленно.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if orderID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	refresh := false
	if raw := r.URL.Query().Get("refresh"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		refresh = parsed
	}

	sess := session_guard.FromContext(r.Context())
	view, err := h.screens.Mount(r.Context(), sess, orderID)
	if err == nil && refresh {
		view, err = h.screens.Refresh(r.Context(), sess, orderID)
	}

	status := http.StatusOK
	if err != nil {
		switch {
		case errors.Is(err, controller.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
			return
		case errors.Is(err, tracking.ErrRegistryClosed):
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		case errors.Is(err, tracking.ErrTooManyScreens):
			w.WriteHeader(http.StatusTooManyRequests)
			return
		case errors.Is(err, tracking.ErrNotMounted):
			status = http.StatusNotFound
		case errors.Is(err, order.ErrOrderNotFound):
			status = http.StatusNotFound
		default:
			status = http.StatusBadGateway
		}
	}

	res := dto.TrackingSnapshot{OrderID: orderID}
	if view != nil {
		res = presenter.TrackingSnapshot(view)
		res.OrderID = orderID
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
