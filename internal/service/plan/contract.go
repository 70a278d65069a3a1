//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=plan_test
package plan

import (
	"context"

	"cliver/internal/entities"
)

type Repository interface {
	ListActive(ctx context.Context, userType entities.UserRoleType) ([]entities.SubscriptionPlan, error)
}
