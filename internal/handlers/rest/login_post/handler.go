package login_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"portal/internal/generated/dto"
	"portal/internal/pkg/middlewares/session_guard"
	"portal/internal/service/session"
	"portal/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	service   Service
	cookieTTL time.Duration
}

func New(log handlerLogger, service Service, cookieTTL time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		cookieTTL: cookieTTL,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrMissingCredentials):
			h.writeError(w, http.StatusBadRequest, "Email y contraseña son obligatorios")
		case errors.Is(err, session.ErrInvalidEmail):
			h.writeError(w, http.StatusBadRequest, "Email inválido")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("login")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session_guard.CookieName,
		Value:    res.Token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	user := res.Session.User
	h.log.With(
		logger.NewField("session", res.Session.ID),
		logger.NewField("role", user.Role.String()),
	).Info("user logged in")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.LoginResponse{
		Token: res.Token,
		User: dto.User{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role.String(),
		},
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{Message: &message})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
