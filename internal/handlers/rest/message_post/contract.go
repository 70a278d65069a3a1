//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=message_post_test
package message_post

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
	PostMessage(ctx context.Context, messageCreate entities.MessageCreate) (*entities.Message, error)
}
