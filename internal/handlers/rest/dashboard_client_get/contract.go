//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_client_get_test
package dashboard_client_get

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
	ClientDashboard(ctx context.Context, clientID uuid.UUID) (*entities.ClientDashboardStats, error)
}
