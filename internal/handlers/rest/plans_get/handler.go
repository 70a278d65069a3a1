package plans_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"cliver/internal/dto"
	"cliver/internal/entities"
	"cliver/internal/service/plan"
	"cliver/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userType := entities.UserRoleType(r.URL.Query().Get("user_type"))

	plans, err := h.service.ListPlans(r.Context(), userType)
	if err != nil {
		switch {
		case errors.Is(err, plan.ErrInvalidUserType):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewSubscriptionPlanListResponse(plans)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
