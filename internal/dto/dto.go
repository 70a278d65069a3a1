// Package dto содержит транспортные типы REST API. Держится отдельно
// от entities, чтобы формат JSON не протекал в домен.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type MissionCreateRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	StartAddress   string     `json:"start_address"`
	EndAddress     string     `json:"end_address"`
	RecipientName  *string    `json:"recipient_name,omitempty"`
	RecipientPhone *string    `json:"recipient_phone,omitempty"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	DeliveryType   string     `json:"delivery_type,omitempty"`
}

type MissionResponse struct {
	ID                  string     `json:"id"`
	ClientID            string     `json:"client_id"`
	LivreurID           *string    `json:"livreur_id,omitempty"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	StartAddress        string     `json:"start_address"`
	EndAddress          string     `json:"end_address"`
	RecipientName       *string    `json:"recipient_name,omitempty"`
	RecipientPhone      *string    `json:"recipient_phone,omitempty"`
	ScheduledAt         *time.Time `json:"scheduled_at,omitempty"`
	DeliveryType        string     `json:"delivery_type"`
	Prix                int64      `json:"prix"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
	DeliveryConfirmedAt *time.Time `json:"delivery_confirmed_at,omitempty"`
}

type MissionListResponse struct {
	Missions []MissionResponse `json:"missions"`
}

type MessageCreateRequest struct {
	MissionID  string  `json:"mission_id"`
	ReceiverID *string `json:"receiver_id,omitempty"`
	Content    string  `json:"content"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	MissionID  string    `json:"mission_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID *string   `json:"receiver_id,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

type TransactionResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"type"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
	Description   *string   `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

type SubscriptionPlanResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        int64     `json:"price"`
	Currency     string    `json:"currency"`
	DurationDays int32     `json:"duration_days"`
	Features     []string  `json:"features"`
	UserType     string    `json:"user_type"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type SubscriptionPlanListResponse struct {
	Plans []SubscriptionPlanResponse `json:"plans"`
}

type SignUpRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	FullName      string `json:"full_name"`
	Phone         string `json:"phone,omitempty"`
	TermsAccepted bool   `json:"terms_accepted"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ClientDashboardResponse struct {
	OngoingCount   int64             `json:"ongoing_count"`
	DeliveredCount int64             `json:"delivered_count"`
	DeliveredTotal int64             `json:"delivered_total"`
	Recent         []MissionResponse `json:"recent"`
}

type CourierDashboardResponse struct {
	AvailableCount int64             `json:"available_count"`
	DeliveredCount int64             `json:"delivered_count"`
	EarnedTotal    int64             `json:"earned_total"`
	Recent         []MissionResponse `json:"recent"`
}
