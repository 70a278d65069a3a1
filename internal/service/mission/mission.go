package mission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cliver/internal/entities"
)

// Mission реализует контракт жизненного цикла миссии. Каждая мутация -
// одиночный conditional UPDATE по первичному ключу с предикатом
// статуса/исполнителя; атомарность обеспечивает хранилище, сервис
// только интерпретирует результат (0 строк = конфликт).
type Mission struct {
	repository Repository
}

func New(repository Repository) *Mission {
	return &Mission{
		repository: repository,
	}
}

func (s *Mission) CreateMission(ctx context.Context, missionCreate entities.MissionCreate) (*entities.Mission, error) {
	if missionCreate.ClientID == uuid.Nil {
		return nil, ErrInvalidActorID
	}
	if isBlank(missionCreate.Title) ||
		isBlank(missionCreate.StartAddress) ||
		isBlank(missionCreate.EndAddress) {
		return nil, ErrMissingRequiredFields
	}

	if missionCreate.DeliveryType == "" {
		missionCreate.DeliveryType = entities.DefaultDeliveryType
	}
	if !isValidDeliveryType(missionCreate.DeliveryType) {
		return nil, ErrInvalidDeliveryType
	}

	mission, err := s.repository.Create(ctx, missionCreate)
	if err != nil {
		return nil, fmt.Errorf("create mission: %w", err)
	}

	return mission, nil
}

// ClaimMission - принятие миссии курьером. Guard: status = pending и
// livreur_id IS NULL; первый успевший курьер выигрывает, второй получает
// ErrMissionUnavailable.
func (s *Mission) ClaimMission(ctx context.Context, missionID, courierID uuid.UUID) error {
	if missionID == uuid.Nil {
		return ErrInvalidMissionID
	}
	if courierID == uuid.Nil {
		return ErrInvalidActorID
	}

	rowsAffected, err := s.repository.Claim(ctx, missionID, courierID)
	if err != nil {
		return fmt.Errorf("claim mission: %w", err)
	}
	if rowsAffected == 0 {
		return ErrMissionUnavailable
	}
	return nil
}

// StartMission переводит миссию в in_delivery. Из assigned - только
// назначенный курьер; из pending миссия одновременно назначается
// (claim-and-start), чтобы инвариант pending <=> без исполнителя
// сохранялся.
func (s *Mission) StartMission(ctx context.Context, missionID, courierID uuid.UUID) error {
	if missionID == uuid.Nil {
		return ErrInvalidMissionID
	}
	if courierID == uuid.Nil {
		return ErrInvalidActorID
	}

	rowsAffected, err := s.repository.Start(ctx, missionID, courierID)
	if err != nil {
		return fmt.Errorf("start mission: %w", err)
	}
	if rowsAffected == 0 {
		return ErrMissionUnavailable
	}
	return nil
}

// CompleteMission - завершение назначенным курьером, выставляет
// delivery_confirmed_at. Повторный Complete по уже доставленной миссии
// не совпадает с guard и возвращает конфликт.
func (s *Mission) CompleteMission(ctx context.Context, missionID, courierID uuid.UUID) error {
	if missionID == uuid.Nil {
		return ErrInvalidMissionID
	}
	if courierID == uuid.Nil {
		return ErrInvalidActorID
	}

	confirmedAt := time.Now().UTC()
	rowsAffected, err := s.repository.Complete(ctx, missionID, courierID, confirmedAt)
	if err != nil {
		return fmt.Errorf("complete mission: %w", err)
	}
	if rowsAffected == 0 {
		return ErrMissionUnavailable
	}
	return nil
}

// CancelMission - отмена клиентом-владельцем из любого нетерминального статуса.
func (s *Mission) CancelMission(ctx context.Context, missionID, clientID uuid.UUID) error {
	if missionID == uuid.Nil {
		return ErrInvalidMissionID
	}
	if clientID == uuid.Nil {
		return ErrInvalidActorID
	}

	rowsAffected, err := s.repository.Cancel(ctx, missionID, clientID)
	if err != nil {
		return fmt.Errorf("cancel mission: %w", err)
	}
	if rowsAffected == 0 {
		return ErrMissionUnavailable
	}
	return nil
}

// GetMission отдает миссию только ее участникам: клиенту-владельцу и
// назначенному курьеру. Курьер дополнительно видит неназначенные
// pending-миссии (карточка в списке доступных).
func (s *Mission) GetMission(ctx context.Context, missionID uuid.UUID, actor entities.Actor) (*entities.Mission, error) {
	if missionID == uuid.Nil {
		return nil, ErrInvalidMissionID
	}
	if actor.ID == uuid.Nil {
		return nil, ErrInvalidActorID
	}

	mission, err := s.repository.GetByID(ctx, missionID)
	if err != nil {
		return nil, fmt.Errorf("get mission: %w", err)
	}

	if !isParticipant(mission, actor) {
		return nil, ErrNotParticipant
	}

	return mission, nil
}

func (s *Mission) ListAvailableMissions(ctx context.Context, limit int) ([]entities.Mission, error) {
	missions, err := s.repository.ListAvailable(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list available missions: %w", err)
	}
	return missions, nil
}

func (s *Mission) ListClientMissions(ctx context.Context, clientID uuid.UUID, filter entities.MissionFilterType, limit int) ([]entities.Mission, error) {
	if clientID == uuid.Nil {
		return nil, ErrInvalidActorID
	}
	if !filter.Valid() {
		return nil, ErrInvalidFilter
	}

	missions, err := s.repository.ListByClient(ctx, clientID, filter.Statuses(), normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list client missions: %w", err)
	}
	return missions, nil
}

func (s *Mission) ListCourierMissions(ctx context.Context, courierID uuid.UUID, filter entities.MissionFilterType, limit int) ([]entities.Mission, error) {
	if courierID == uuid.Nil {
		return nil, ErrInvalidActorID
	}
	if !filter.Valid() {
		return nil, ErrInvalidFilter
	}

	missions, err := s.repository.ListByCourier(ctx, courierID, filter.Statuses(), normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list courier missions: %w", err)
	}
	return missions, nil
}

func (s *Mission) ClientDashboard(ctx context.Context, clientID uuid.UUID) (*entities.ClientDashboardStats, error) {
	if clientID == uuid.Nil {
		return nil, ErrInvalidActorID
	}

	ongoing, err := s.repository.CountByClient(ctx, clientID, entities.MissionFilterOngoing.Statuses())
	if err != nil {
		return nil, fmt.Errorf("client dashboard, ongoing count: %w", err)
	}

	deliveredCount, deliveredTotal, err := s.repository.DeliveredTotalByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("client dashboard, delivered totals: %w", err)
	}

	const recentLimit = 5
	recent, err := s.repository.ListByClient(ctx, clientID, nil, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("client dashboard, recent missions: %w", err)
	}

	return &entities.ClientDashboardStats{
		OngoingCount:   ongoing,
		DeliveredCount: deliveredCount,
		DeliveredTotal: deliveredTotal,
		Recent:         recent,
	}, nil
}

func (s *Mission) CourierDashboard(ctx context.Context, courierID uuid.UUID) (*entities.CourierDashboardStats, error) {
	if courierID == uuid.Nil {
		return nil, ErrInvalidActorID
	}

	available, err := s.repository.CountAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("courier dashboard, available count: %w", err)
	}

	deliveredCount, earnedTotal, err := s.repository.DeliveredTotalByCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("courier dashboard, delivered totals: %w", err)
	}

	const recentLimit = 5
	recent, err := s.repository.ListAvailable(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("courier dashboard, recent available: %w", err)
	}

	return &entities.CourierDashboardStats{
		AvailableCount: available,
		DeliveredCount: deliveredCount,
		EarnedTotal:    earnedTotal,
		Recent:         recent,
	}, nil
}

func isParticipant(mission *entities.Mission, actor entities.Actor) bool {
	if mission.ClientID == actor.ID {
		return true
	}
	if mission.LivreurID != nil && *mission.LivreurID == actor.ID {
		return true
	}
	// курьер видит еще не разобранные миссии
	if actor.Role == entities.RoleLivreur &&
		mission.Status == entities.MissionPending && mission.LivreurID == nil {
		return true
	}
	return false
}
