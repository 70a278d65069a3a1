package entities

import (
	"time"

	"github.com/google/uuid"
)

// Message привязан ровно к одной миссии, append-only: операций
// редактирования и удаления нет.
type Message struct {
	ID         uuid.UUID
	MissionID  uuid.UUID
	SenderID   uuid.UUID
	ReceiverID *uuid.UUID
	Content    string
	CreatedAt  time.Time
}

type MessageCreate struct {
	MissionID  uuid.UUID
	SenderID   uuid.UUID
	ReceiverID *uuid.UUID
	Content    string
}
