package plan

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionPlanDB struct {
	ID           uuid.UUID
	Name         string
	Price        int64
	Currency     string
	DurationDays int32
	Features     []string
	UserType     string
	IsActive     bool
	CreatedAt    time.Time
}
