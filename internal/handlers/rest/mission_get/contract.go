//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mission_get_test
package mission_get

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
	GetMission(ctx context.Context, missionID uuid.UUID, actor entities.Actor) (*entities.Mission, error)
}
