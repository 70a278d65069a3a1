//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_courier_get_test
package dashboard_courier_get

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
	CourierDashboard(ctx context.Context, courierID uuid.UUID) (*entities.CourierDashboardStats, error)
}
