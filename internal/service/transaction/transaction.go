package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"cliver/internal/entities"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// Transaction - история платежей. Из HTTP API только чтение;
// RecordTransaction вызывается воркером платежных событий.
type Transaction struct {
	repository Repository
}

func New(repository Repository) *Transaction {
	return &Transaction{
		repository: repository,
	}
}

func (s *Transaction) RecordTransaction(ctx context.Context, transactionCreate entities.TransactionCreate) (*entities.Transaction, error) {
	if transactionCreate.UserID == uuid.Nil {
		return nil, ErrInvalidUserID
	}
	if transactionCreate.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !transactionCreate.Type.Valid() {
		return nil, ErrInvalidType
	}
	if !transactionCreate.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	created, err := s.repository.Create(ctx, transactionCreate)
	if err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}
	return created, nil
}

func (s *Transaction) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]entities.Transaction, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	transactions, err := s.repository.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}
