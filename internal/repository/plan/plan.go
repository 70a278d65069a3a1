package plan

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"cliver/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const planColumns = `id, name, price, currency, duration_days, features, user_type, is_active, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListActive(ctx context.Context, userType entities.UserRoleType) ([]entities.SubscriptionPlan, error) {
	builder := qb.
		Select(planColumns).
		From("subscription_plans").
		Where(sq.Eq{"is_active": true}).
		OrderBy("price ASC")

	if userType != "" {
		builder = builder.Where(sq.Eq{"user_type": userType.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected plan repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected plan repository list error: %w", err)
	}
	defer rows.Close()

	planModels := make([]SubscriptionPlanDB, 0, 4)
	for rows.Next() {
		var planDB SubscriptionPlanDB
		err = rows.Scan(
			&planDB.ID,
			&planDB.Name,
			&planDB.Price,
			&planDB.Currency,
			&planDB.DurationDays,
			&planDB.Features,
			&planDB.UserType,
			&planDB.IsActive,
			&planDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected plan repository scan error: %w", err)
		}
		planModels = append(planModels, planDB)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected plan repository rows error: %w", err)
	}

	return ToDomainList(planModels), nil
}
