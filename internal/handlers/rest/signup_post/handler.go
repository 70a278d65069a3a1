package signup_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cliver/internal/dto"
	"cliver/internal/entities"
	"cliver/internal/gateway/auth"
	"cliver/pkg/logger"
)

const minPasswordLength = 6

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
	var signUpDTO dto.SignUpRequest
	err := json.NewDecoder(r.Body).Decode(&signUpDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Валидация до похода в провайдер, чтобы не жечь его лимиты.
	role := entities.UserRoleType(signUpDTO.Role)
	switch {
	case strings.TrimSpace(signUpDTO.Email) == "",
		strings.TrimSpace(signUpDTO.FullName) == "",
		len(signUpDTO.Password) < minPasswordLength,
		!role.Valid(),
		!signUpDTO.TermsAccepted:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := h.gateway.SignUp(r.Context(), entities.SignUpData{
		Email:    signUpDTO.Email,
		Password: signUpDTO.Password,
		Role:     role,
		FullName: signUpDTO.FullName,
		Phone:    signUpDTO.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewSessionResponse(session)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
