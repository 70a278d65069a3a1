//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=plans_get_test
package plans_get

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
	ListPlans(ctx context.Context, userType entities.UserRoleType) ([]entities.SubscriptionPlan, error)
}
