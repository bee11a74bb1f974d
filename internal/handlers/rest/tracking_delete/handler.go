package tracking_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"portal/internal/controller"
	"portal/internal/controller/tracking"
	"portal/internal/pkg/middlewares/session_guard"
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

// ServeHTTP закрывает экран отслеживания и останавливает опрос.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if orderID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sess := session_guard.FromContext(r.Context())
	err := h.screens.Unmount(sess, orderID)
	if err != nil {
		switch {
		case errors.Is(err, controller.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, tracking.ErrNotMounted):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			).Error("unmount tracking view")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.With(
		logger.NewField("session", sess.ID),
		logger.NewField("order_id", orderID),
	).Info("tracking view unmounted")
	w.WriteHeader(http.StatusNoContent)
}
