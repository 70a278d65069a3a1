package entities

import "github.com/google/uuid"

// AuthSession - результат signup/login у внешнего auth-провайдера.
// Токены прозрачно отдаются клиенту, сервис их не хранит.
type AuthSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	User         AuthUser
}

type AuthUser struct {
	ID    uuid.UUID
	Email string
	Role  UserRoleType
}

type SignUpData struct {
	Email    string
	Password string
	Role     UserRoleType
	FullName string
	Phone    string
}
