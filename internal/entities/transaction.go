package entities

import (
	"time"

	"github.com/google/uuid"
)

// Transaction - запись истории платежей. Создается только воркером
// платежных событий, из HTTP API доступна только на чтение.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          TransactionTypeType
	Amount        int64
	Status        TransactionStatusType
	PaymentMethod *string
	Description   *string
	CreatedAt     time.Time
}

type TransactionCreate struct {
	UserID        uuid.UUID
	Type          TransactionTypeType
	Amount        int64
	Status        TransactionStatusType
	PaymentMethod *string
	Description   *string
}

type TransactionTypeType string

const (
	TransactionPayment TransactionTypeType = "payment"
	TransactionRefund  TransactionTypeType = "refund"
	TransactionPayout  TransactionTypeType = "payout"
)

func (t TransactionTypeType) String() string {
	return string(t)
}

func (t TransactionTypeType) Valid() bool {
	switch t {
	case TransactionPayment, TransactionRefund, TransactionPayout:
		return true
	default:
		return false
	}
}

type TransactionStatusType string

const (
	TransactionPending   TransactionStatusType = "pending"
	TransactionCompleted TransactionStatusType = "completed"
	TransactionFailed    TransactionStatusType = "failed"
)

func (s TransactionStatusType) String() string {
	return string(s)
}

func (s TransactionStatusType) Valid() bool {
	switch s {
	case TransactionPending, TransactionCompleted, TransactionFailed:
		return true
	default:
		return false
	}
}
