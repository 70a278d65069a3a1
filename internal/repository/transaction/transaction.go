package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"cliver/internal/entities"
)

const transactionColumns = `id, user_id, type, amount, status, payment_method, description, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, transactionCreate entities.TransactionCreate) (*entities.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, amount, status, payment_method, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + transactionColumns

	var transactionDB TransactionDB
	err := r.querier.QueryRow(
		ctx,
		query,
		transactionCreate.UserID,
		transactionCreate.Type.String(),
		transactionCreate.Amount,
		transactionCreate.Status.String(),
		transactionCreate.PaymentMethod,
		transactionCreate.Description,
	).Scan(
		&transactionDB.ID,
		&transactionDB.UserID,
		&transactionDB.Type,
		&transactionDB.Amount,
		&transactionDB.Status,
		&transactionDB.PaymentMethod,
		&transactionDB.Description,
		&transactionDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected transaction repository create error: %w", err)
	}

	return ToDomain(&transactionDB), nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entities.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected transaction repository list error: %w", err)
	}
	defer rows.Close()

	transactionModels := make([]TransactionDB, 0, 8)
	for rows.Next() {
		var transactionDB TransactionDB
		err = rows.Scan(
			&transactionDB.ID,
			&transactionDB.UserID,
			&transactionDB.Type,
			&transactionDB.Amount,
			&transactionDB.Status,
			&transactionDB.PaymentMethod,
			&transactionDB.Description,
			&transactionDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected transaction repository scan error: %w", err)
		}
		transactionModels = append(transactionModels, transactionDB)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected transaction repository rows error: %w", err)
	}

	return ToDomainList(transactionModels), nil
}
