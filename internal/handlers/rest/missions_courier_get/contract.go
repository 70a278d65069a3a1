//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=missions_courier_get_test
package missions_courier_get

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
	ListCourierMissions(ctx context.Context, courierID uuid.UUID, filter entities.MissionFilterType, limit int) ([]entities.Mission, error)
}
