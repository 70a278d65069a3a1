//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=messages_get_test
package messages_get

import (
	"context"

	"github.com/google/uuid"

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
	ListMessages(ctx context.Context, missionID, requesterID uuid.UUID, limit int) ([]entities.Message, error)
}
