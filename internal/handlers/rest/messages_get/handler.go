package messages_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"cliver/internal/dto"
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

	missionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	messages, err := h.service.ListMessages(r.Context(), missionID, actor.ID, limit)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrInvalidMissionID),
			errors.Is(err, message.ErrInvalidSenderID):
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

	response := dto.NewMessageListResponse(messages)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
