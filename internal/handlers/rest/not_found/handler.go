// Package not_found уводит неизвестные пути на список заказов.
package not_found

import (
	"net/http"

	"github.com/gorilla/mux"
)

const Target = "/orders"

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, Target, http.StatusFound)
}

// Register ставит обработчик и на неизвестный путь, и на чужой метод
// известного пути.
func Register(router *mux.Router) {
	h := New()
	router.NotFoundHandler = h
	router.MethodNotAllowedHandler = h
}
