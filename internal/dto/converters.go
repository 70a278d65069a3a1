package dto

import "cliver/internal/entities"

func NewMissionResponse(m *entities.Mission) MissionResponse {
	resp := MissionResponse{
		ID:                  m.ID.String(),
		ClientID:            m.ClientID.String(),
		Title:               m.Title,
		Description:         m.Description,
		StartAddress:        m.StartAddress,
		EndAddress:          m.EndAddress,
		RecipientName:       m.RecipientName,
		RecipientPhone:      m.RecipientPhone,
		ScheduledAt:         m.ScheduledAt,
		DeliveryType:        m.DeliveryType,
		Prix:                m.Prix,
		Status:              m.Status.String(),
		CreatedAt:           m.CreatedAt,
		DeliveryConfirmedAt: m.DeliveryConfirmedAt,
	}
	if m.LivreurID != nil {
		livreurID := m.LivreurID.String()
		resp.LivreurID = &livreurID
	}
	return resp
}

func NewMissionListResponse(missions []entities.Mission) MissionListResponse {
	resp := MissionListResponse{
		Missions: make([]MissionResponse, 0, len(missions)),
	}
	for i := range missions {
		resp.Missions = append(resp.Missions, NewMissionResponse(&missions[i]))
	}
	return resp
}

func NewMessageResponse(m *entities.Message) MessageResponse {
	resp := MessageResponse{
		ID:        m.ID.String(),
		MissionID: m.MissionID.String(),
		SenderID:  m.SenderID.String(),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.ReceiverID != nil {
		receiverID := m.ReceiverID.String()
		resp.ReceiverID = &receiverID
	}
	return resp
}

func NewMessageListResponse(messages []entities.Message) MessageListResponse {
	resp := MessageListResponse{
		Messages: make([]MessageResponse, 0, len(messages)),
	}
	for i := range messages {
		resp.Messages = append(resp.Messages, NewMessageResponse(&messages[i]))
	}
	return resp
}

func NewTransactionListResponse(transactions []entities.Transaction) TransactionListResponse {
	resp := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
	}
	for i := range transactions {
		t := &transactions[i]
		resp.Transactions = append(resp.Transactions, TransactionResponse{
			ID:            t.ID.String(),
			UserID:        t.UserID.String(),
			Type:          t.Type.String(),
			Amount:        t.Amount,
			Status:        t.Status.String(),
			PaymentMethod: t.PaymentMethod,
			Description:   t.Description,
			CreatedAt:     t.CreatedAt,
		})
	}
	return resp
}

func NewSubscriptionPlanListResponse(plans []entities.SubscriptionPlan) SubscriptionPlanListResponse {
	resp := SubscriptionPlanListResponse{
		Plans: make([]SubscriptionPlanResponse, 0, len(plans)),
	}
	for i := range plans {
		p := &plans[i]
		resp.Plans = append(resp.Plans, SubscriptionPlanResponse{
			ID:           p.ID.String(),
			Name:         p.Name,
			Price:        p.Price,
			Currency:     p.Currency,
			DurationDays: p.DurationDays,
			Features:     p.Features,
			UserType:     p.UserType.String(),
			IsActive:     p.IsActive,
			CreatedAt:    p.CreatedAt,
		})
	}
	return resp
}

func NewSessionResponse(s *entities.AuthSession) SessionResponse {
	return SessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
		User: UserResponse{
			ID:    s.User.ID.String(),
			Email: s.User.Email,
			Role:  s.User.Role.String(),
		},
	}
}
