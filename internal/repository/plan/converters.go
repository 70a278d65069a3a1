package plan

import "cliver/internal/entities"

func ToDomain(m *SubscriptionPlanDB) *entities.SubscriptionPlan {
	if m == nil {
		return nil
	}
	return &entities.SubscriptionPlan{
		ID:           m.ID,
		Name:         m.Name,
		Price:        m.Price,
		Currency:     m.Currency,
		DurationDays: m.DurationDays,
		Features:     m.Features,
		UserType:     entities.UserRoleType(m.UserType),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

func ToDomainList(models []SubscriptionPlanDB) []entities.SubscriptionPlan {
	plans := make([]entities.SubscriptionPlan, 0, len(models))
	for i := range models {
		plans = append(plans, *ToDomain(&models[i]))
	}
	return plans
}
