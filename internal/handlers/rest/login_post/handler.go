package login_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cliver/internal/dto"
	"cliver/internal/gateway/auth"
	"cliver/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	gateway Gateway
}

func New(log handlerLogger, gateway Gateway) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		gateway: gateway,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(loginDTO.Email) == "" || loginDTO.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := h.gateway.SignIn(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewSessionResponse(session)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
