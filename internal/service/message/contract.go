//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=message_test
package message

import (
	"context"

	"github.com/google/uuid"

	"cliver/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, messageCreate entities.MessageCreate) (*entities.Message, error)
	ListByMission(ctx context.Context, missionID uuid.UUID, limit int) ([]entities.Message, error)
}

// MissionProvider дает доступ к миссии для проверки участия отправителя
// и определения получателя по умолчанию.
type MissionProvider interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Mission, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
