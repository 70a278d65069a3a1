package entities

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionPlan - справочная сущность без жизненного цикла,
// читается для витрины тарифов.
type SubscriptionPlan struct {
	ID           uuid.UUID
	Name         string
	Price        int64
	Currency     string
	DurationDays int32
	Features     []string
	UserType     UserRoleType
	IsActive     bool
	CreatedAt    time.Time
}
