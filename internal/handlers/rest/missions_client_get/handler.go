package missions_client_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cliver/internal/dto"
	"cliver/internal/entities"
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

	filter := entities.MissionFilterType(r.URL.Query().Get("filter"))

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	missions, err := h.service.ListClientMissions(r.Context(), actor.ID, filter, limit)
	if err != nil {
		switch {
		case errors.Is(err, mission.ErrInvalidActorID),
			errors.Is(err, mission.ErrInvalidFilter):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewMissionListResponse(missions)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
