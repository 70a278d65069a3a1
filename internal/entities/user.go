package entities

import "github.com/google/uuid"

// Роли приходят из claim'а внешнего auth-провайдера и определяют,
// какие переходы жизненного цикла доступны пользователю.
type UserRoleType string

const (
	RoleClient  UserRoleType = "client"
	RoleLivreur UserRoleType = "livreur"
)

func (r UserRoleType) String() string {
	return string(r)
}

func (r UserRoleType) Valid() bool {
	switch r {
	case RoleClient, RoleLivreur:
		return true
	default:
		return false
	}
}

// Actor - идентичность, разрешенная один раз на запрос из сессии
// auth-провайдера и передаваемая в сервисы явно.
type Actor struct {
	ID    uuid.UUID
	Role  UserRoleType
	Email string
}
