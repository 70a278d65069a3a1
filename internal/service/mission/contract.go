//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mission_test
package mission

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cliver/internal/entities"
)

// Repository - хранилище миссий. Все Claim/Start/Complete/Cancel -
// одиночные conditional UPDATE: возвращают число затронутых строк,
// ноль означает, что guard-предикат не совпал (конфликт, а не ошибка).
type Repository interface {
	Create(ctx context.Context, missionCreate entities.MissionCreate) (*entities.Mission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Mission, error)

	Claim(ctx context.Context, missionID, courierID uuid.UUID) (int64, error)
	Start(ctx context.Context, missionID, courierID uuid.UUID) (int64, error)
	Complete(ctx context.Context, missionID, courierID uuid.UUID, confirmedAt time.Time) (int64, error)
	Cancel(ctx context.Context, missionID, clientID uuid.UUID) (int64, error)

	ListAvailable(ctx context.Context, limit int) ([]entities.Mission, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, statuses []entities.MissionStatusType, limit int) ([]entities.Mission, error)
	ListByCourier(ctx context.Context, courierID uuid.UUID, statuses []entities.MissionStatusType, limit int) ([]entities.Mission, error)

	CountAvailable(ctx context.Context) (int64, error)
	CountByClient(ctx context.Context, clientID uuid.UUID, statuses []entities.MissionStatusType) (int64, error)
	DeliveredTotalByClient(ctx context.Context, clientID uuid.UUID) (count, total int64, err error)
	DeliveredTotalByCourier(ctx context.Context, courierID uuid.UUID) (count, total int64, err error)
}
