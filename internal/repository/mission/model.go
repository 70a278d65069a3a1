package mission

import (
	"time"

	"github.com/google/uuid"
)

type MissionDB struct {
	ID                  uuid.UUID
	ClientID            uuid.UUID
	LivreurID           *uuid.UUID
	Title               string
	Description         string
	StartAddress        string
	EndAddress          string
	RecipientName       *string
	RecipientPhone      *string
	ScheduledAt         *time.Time
	DeliveryType        string
	Prix                int64
	Status              string
	CreatedAt           time.Time
	DeliveryConfirmedAt *time.Time
}
