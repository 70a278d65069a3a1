package message

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"cliver/internal/entities"
)

// Message - переписка в рамках миссии. Сообщения append-only, доступ
// ограничен участниками миссии (клиент и назначенный курьер).
type Message struct {
	repository Repository
	missions   MissionProvider
	txManager  TxManager
}

func New(repository Repository, missions MissionProvider, txManager TxManager) *Message {
	return &Message{
		repository: repository,
		missions:   missions,
		txManager:  txManager,
	}
}

// PostMessage проверяет участие отправителя и вставляет сообщение в
// одной транзакции, подставляя получателем вторую сторону миссии, если
// он не задан явно.
func (s *Message) PostMessage(ctx context.Context, messageCreate entities.MessageCreate) (*entities.Message, error) {
	if messageCreate.MissionID == uuid.Nil {
		return nil, ErrInvalidMissionID
	}
	if messageCreate.SenderID == uuid.Nil {
		return nil, ErrInvalidSenderID
	}

	messageCreate.Content = strings.TrimSpace(messageCreate.Content)
	if messageCreate.Content == "" {
		return nil, ErrEmptyContent
	}

	var created *entities.Message
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		mission, err := s.missions.GetByID(ctx, messageCreate.MissionID)
		if err != nil {
			return fmt.Errorf("get mission: %w", err)
		}

		if !participates(mission, messageCreate.SenderID) {
			return ErrNotParticipant
		}

		if messageCreate.ReceiverID == nil {
			messageCreate.ReceiverID = counterpart(mission, messageCreate.SenderID)
		}

		created, err = s.repository.Create(ctx, messageCreate)
		if err != nil {
			return fmt.Errorf("create message: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Message) ListMessages(ctx context.Context, missionID, requesterID uuid.UUID, limit int) ([]entities.Message, error) {
	if missionID == uuid.Nil {
		return nil, ErrInvalidMissionID
	}
	if requesterID == uuid.Nil {
		return nil, ErrInvalidSenderID
	}

	mission, err := s.missions.GetByID(ctx, missionID)
	if err != nil {
		return nil, fmt.Errorf("get mission: %w", err)
	}
	if !participates(mission, requesterID) {
		return nil, ErrNotParticipant
	}

	if limit <= 0 || limit > 100 {
		limit = 100
	}

	messages, err := s.repository.ListByMission(ctx, missionID, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func participates(mission *entities.Mission, userID uuid.UUID) bool {
	if mission.ClientID == userID {
		return true
	}
	return mission.LivreurID != nil && *mission.LivreurID == userID
}

// counterpart возвращает вторую сторону миссии; nil, если курьер еще
// не назначен.
func counterpart(mission *entities.Mission, senderID uuid.UUID) *uuid.UUID {
	if mission.ClientID == senderID {
		return mission.LivreurID
	}
	clientID := mission.ClientID
	return &clientID
}
