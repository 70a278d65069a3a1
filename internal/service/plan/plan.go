package plan

import (
	"context"
	"errors"
	"fmt"

	"cliver/internal/entities"
)

var ErrInvalidUserType = errors.New("invalid user type")

// Plan - витрина тарифов: справочник без жизненного цикла.
type Plan struct {
	repository Repository
}

func New(repository Repository) *Plan {
	return &Plan{
		repository: repository,
	}
}

// ListPlans возвращает активные тарифы по возрастанию цены; пустой
// userType означает "все".
func (s *Plan) ListPlans(ctx context.Context, userType entities.UserRoleType) ([]entities.SubscriptionPlan, error) {
	if userType != "" && !userType.Valid() {
		return nil, ErrInvalidUserType
	}

	plans, err := s.repository.ListActive(ctx, userType)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}
