//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transaction_test
package transaction

import (
	"context"

	"github.com/google/uuid"

	"cliver/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, transactionCreate entities.TransactionCreate) (*entities.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entities.Transaction, error)
}
