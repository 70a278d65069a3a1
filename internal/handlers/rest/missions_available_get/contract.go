//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=missions_available_get_test
package missions_available_get

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
	ListAvailableMissions(ctx context.Context, limit int) ([]entities.Mission, error)
}
