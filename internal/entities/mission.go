package entities

import (
	"time"

	"github.com/google/uuid"
)

// Mission - заявка клиента на доставку. Единственный разделяемый
// изменяемый ресурс системы: все мутации идут через guarded-операции
// (см. lifecycle.go).
type Mission struct {
	ID                  uuid.UUID
	ClientID            uuid.UUID
	LivreurID           *uuid.UUID
	Title               string
	Description         string
	StartAddress        string
	EndAddress          string
	RecipientName       *string
	RecipientPhone      *string
	ScheduledAt         *time.Time
	DeliveryType        string
	Prix                int64
	Status              MissionStatusType
	CreatedAt           time.Time
	DeliveryConfirmedAt *time.Time
}

// MissionCreate - поля, задаваемые клиентом при создании миссии.
// Статус, цена и исполнитель выставляются системой: pending, 0, NULL.
type MissionCreate struct {
	ClientID       uuid.UUID
	Title          string
	Description    string
	StartAddress   string
	EndAddress     string
	RecipientName  *string
	RecipientPhone *string
	ScheduledAt    *time.Time
	DeliveryType   string
}

const DefaultDeliveryType = "me"

type MissionStatusType string

const (
	MissionPending          MissionStatusType = "pending"
	MissionAssigned         MissionStatusType = "assigned"
	MissionInDelivery       MissionStatusType = "in_delivery"
	MissionPaymentInitiated MissionStatusType = "payment_initiated"
	MissionDelivered        MissionStatusType = "delivered"
	MissionCancelled        MissionStatusType = "cancelled"
)

func (s MissionStatusType) String() string {
	return string(s)
}

func (s MissionStatusType) Valid() bool {
	switch s {
	case MissionPending, MissionAssigned, MissionInDelivery,
		MissionPaymentInitiated, MissionDelivered, MissionCancelled:
		return true
	default:
		return false
	}
}

// Terminal отмечает статусы без исходящих переходов.
func (s MissionStatusType) Terminal() bool {
	return s == MissionDelivered || s == MissionCancelled
}

// ClientDashboardStats - сводка для дашборда клиента.
type ClientDashboardStats struct {
	OngoingCount   int64
	DeliveredCount int64
	DeliveredTotal int64
	Recent         []Mission
}

// CourierDashboardStats - сводка для дашборда курьера.
type CourierDashboardStats struct {
	AvailableCount int64
	DeliveredCount int64
	EarnedTotal    int64
	Recent         []Mission
}
