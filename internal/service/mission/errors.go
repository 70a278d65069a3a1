package mission

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidMissionID      = errors.New("invalid mission id")
	ErrInvalidActorID        = errors.New("invalid actor id")
	ErrInvalidFilter         = errors.New("invalid mission filter")
	ErrInvalidDeliveryType   = errors.New("invalid delivery type")

	ErrMissionNotFound = errors.New("mission not found")
	ErrNotParticipant  = errors.New("actor is not a mission participant")

	// ErrMissionUnavailable - guarded-обновление совпало с нулем строк:
	// миссию уже забрали или она ушла в другой статус. Для вызывающего
	// это конфликт, после которого нужно перечитать список.
	ErrMissionUnavailable = errors.New("mission no longer available")
)
