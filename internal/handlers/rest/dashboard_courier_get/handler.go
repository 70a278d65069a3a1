package dashboard_courier_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"cliver/internal/dto"
	"cliver/internal/pkg/middlewares/auth"
	"cliver/internal/service/mission"
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
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	stats, err := h.service.CourierDashboard(r.Context(), actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, mission.ErrInvalidActorID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CourierDashboardResponse{
		AvailableCount: stats.AvailableCount,
		DeliveredCount: stats.DeliveredCount,
		EarnedTotal:    stats.EarnedTotal,
		Recent:         dto.NewMissionListResponse(stats.Recent).Missions,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
