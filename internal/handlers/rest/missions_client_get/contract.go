//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=missions_client_get_test
package missions_client_get

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
	ListClientMissions(ctx context.Context, clientID uuid.UUID, filter entities.MissionFilterType, limit int) ([]entities.Mission, error)
}
