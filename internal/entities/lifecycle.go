package entities

// Жизненный цикл миссии. Таблица переходов - единственный источник
// правды для guard-предикатов: репозиторий строит условия UPDATE строго
// из перечисленных здесь наборов, обновление на 0 строк означает конфликт.
//
//	pending -> assigned -> in_delivery -> delivered
//	   \________________/         \______/
//	    (start поглощает claim)   (complete из assigned тоже допустим)
//
// payment_initiated зарезервирован: его выставляет внешний платежный
// процесс, внутри сервиса в него переходов нет, но ongoing-фильтр и
// отмена его учитывают.
var missionTransitions = map[MissionStatusType][]MissionStatusType{
	MissionPending:          {MissionAssigned, MissionInDelivery, MissionCancelled},
	MissionAssigned:         {MissionInDelivery, MissionDelivered, MissionCancelled},
	MissionInDelivery:       {MissionDelivered, MissionCancelled},
	MissionPaymentInitiated: {MissionCancelled},
	MissionDelivered:        {},
	MissionCancelled:        {},
}

// CanTransition проверяет переход по таблице жизненного цикла.
func CanTransition(from, to MissionStatusType) bool {
	for _, allowed := range missionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Guard-наборы по операциям. Claim дополнительно требует livreur_id IS NULL,
// Start из pending - тоже (и одновременно назначает курьера), Start из
// assigned и Complete требуют совпадения действующего курьера, Cancel -
// совпадения клиента-владельца.
var (
	ClaimableStatuses   = []MissionStatusType{MissionPending}
	StartableStatuses   = []MissionStatusType{MissionPending, MissionAssigned}
	CompletableStatuses = []MissionStatusType{MissionAssigned, MissionInDelivery}
	CancellableStatuses = []MissionStatusType{
		MissionPending, MissionAssigned, MissionInDelivery, MissionPaymentInitiated,
	}
)

// MissionFilterType - пользовательские "корзины" статусов для списков.
type MissionFilterType string

const (
	MissionFilterAll       MissionFilterType = ""
	MissionFilterOngoing   MissionFilterType = "ongoing"
	MissionFilterDone      MissionFilterType = "done"
	MissionFilterCancelled MissionFilterType = "cancelled"
)

func (f MissionFilterType) Valid() bool {
	switch f {
	case MissionFilterAll, MissionFilterOngoing, MissionFilterDone, MissionFilterCancelled:
		return true
	default:
		return false
	}
}

// Statuses возвращает статусы корзины; nil означает отсутствие фильтра.
func (f MissionFilterType) Statuses() []MissionStatusType {
	switch f {
	case MissionFilterOngoing:
		return []MissionStatusType{
			MissionPending, MissionAssigned, MissionInDelivery, MissionPaymentInitiated,
		}
	case MissionFilterDone:
		return []MissionStatusType{MissionDelivered}
	case MissionFilterCancelled:
		return []MissionStatusType{MissionCancelled}
	default:
		return nil
	}
}
