package payment_event

import (
	"context"

	"cliver/internal/entities"
	"cliver/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RecordTransaction(ctx context.Context, transactionCreate entities.TransactionCreate) (*entities.Transaction, error)
}
