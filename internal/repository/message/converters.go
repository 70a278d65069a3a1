package message

import "cliver/internal/entities"

func ToDomain(m *MessageDB) *entities.Message {
	if m == nil {
		return nil
	}
	return &entities.Message{
		ID:         m.ID,
		MissionID:  m.MissionID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}

func ToDomainList(models []MessageDB) []entities.Message {
	messages := make([]entities.Message, 0, len(models))
	for i := range models {
		messages = append(messages, *ToDomain(&models[i]))
	}
	return messages
}
