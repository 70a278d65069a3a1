package message

import (
	"time"

	"github.com/google/uuid"
)

type MessageDB struct {
	ID         uuid.UUID
	MissionID  uuid.UUID
	SenderID   uuid.UUID
	ReceiverID *uuid.UUID
	Content    string
	CreatedAt  time.Time
}
