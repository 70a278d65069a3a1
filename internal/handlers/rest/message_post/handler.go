package message_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"cliver/internal/dto"
	"cliver/internal/entities"
	"cliver/internal/pkg/middlewares/auth"
	"cliver/internal/service/message"
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

	var messageCreateDTO dto.MessageCreateRequest
	err := json.NewDecoder(r.Body).Decode(&messageCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	missionID, err := uuid.Parse(messageCreateDTO.MissionID)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var receiverID *uuid.UUID
	if messageCreateDTO.ReceiverID != nil {
		parsed, err := uuid.Parse(*messageCreateDTO.ReceiverID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		receiverID = &parsed
	}

	messageCreateEntity := entities.MessageCreate{
		MissionID:  missionID,
		SenderID:   actor.ID,
		ReceiverID: receiverID,
		Content:    messageCreateDTO.Content,
	}

	messageEntity, err := h.service.PostMessage(r.Context(), messageCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrInvalidMissionID),
			errors.Is(err, message.ErrInvalidSenderID),
			errors.Is(err, message.ErrEmptyContent):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, message.ErrMissionNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, message.ErrNotParticipant):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewMessageResponse(messageEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
