package mission

import "cliver/internal/entities"

func ToDomain(m *MissionDB) *entities.Mission {
	if m == nil {
		return nil
	}
	return &entities.Mission{
		ID:                  m.ID,
		ClientID:            m.ClientID,
		LivreurID:           m.LivreurID,
		Title:               m.Title,
		Description:         m.Description,
		StartAddress:        m.StartAddress,
		EndAddress:          m.EndAddress,
		RecipientName:       m.RecipientName,
		RecipientPhone:      m.RecipientPhone,
		ScheduledAt:         m.ScheduledAt,
		DeliveryType:        m.DeliveryType,
		Prix:                m.Prix,
		Status:              entities.MissionStatusType(m.Status),
		CreatedAt:           m.CreatedAt,
		DeliveryConfirmedAt: m.DeliveryConfirmedAt,
	}
}

func ToDomainList(models []MissionDB) []entities.Mission {
	missions := make([]entities.Mission, 0, len(models))
	for i := range models {
		missions = append(missions, *ToDomain(&models[i]))
	}
	return missions
}

// statusStrings разворачивает guard-набор из entities в значения для
// SQL-предиката, чтобы таблица переходов оставалась единственным
// источником правды.
func statusStrings(statuses []entities.MissionStatusType) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}
