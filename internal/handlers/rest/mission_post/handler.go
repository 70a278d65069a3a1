package mission_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var missionCreateDTO dto.MissionCreateRequest
	err := json.NewDecoder(r.Body).Decode(&missionCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	missionCreateEntity := entities.MissionCreate{
		ClientID:       actor.ID,
		Title:          missionCreateDTO.Title,
		Description:    missionCreateDTO.Description,
		StartAddress:   missionCreateDTO.StartAddress,
		EndAddress:     missionCreateDTO.EndAddress,
		RecipientName:  missionCreateDTO.RecipientName,
		RecipientPhone: missionCreateDTO.RecipientPhone,
		ScheduledAt:    missionCreateDTO.ScheduledAt,
		DeliveryType:   missionCreateDTO.DeliveryType,
	}

	missionEntity, err := h.service.CreateMission(r.Context(), missionCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, mission.ErrMissingRequiredFields),
			errors.Is(err, mission.ErrInvalidActorID),
			errors.Is(err, mission.ErrInvalidDeliveryType):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewMissionResponse(missionEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
