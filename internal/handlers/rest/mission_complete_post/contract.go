//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mission_complete_post_test
package mission_complete_post

import (
	"context"

	"github.com/google/uuid"

	"cliver/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CompleteMission(ctx context.Context, missionID, courierID uuid.UUID) error
}
