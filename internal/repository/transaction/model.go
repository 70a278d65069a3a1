package transaction

import (
	"time"

	"github.com/google/uuid"
)

type TransactionDB struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          string
	Amount        int64
	Status        string
	PaymentMethod *string
	Description   *string
	CreatedAt     time.Time
}
