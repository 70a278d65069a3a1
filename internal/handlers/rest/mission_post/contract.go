//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mission_post_test
package mission_post

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
	CreateMission(ctx context.Context, missionCreate entities.MissionCreate) (*entities.Mission, error)
}
