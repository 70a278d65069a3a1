package mission

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"cliver/internal/entities"
	"cliver/internal/service/mission"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const missionColumns = `id, client_id, livreur_id, title, description, start_address, end_address,
		recipient_name, recipient_phone, scheduled_at, delivery_type, prix, status, created_at, delivery_confirmed_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, missionCreate entities.MissionCreate) (*entities.Mission, error) {
	query := `
		INSERT INTO missions
			(client_id, title, description, start_address, end_address,
			 recipient_name, recipient_phone, scheduled_at, delivery_type, status, prix)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0)
		RETURNING ` + missionColumns

	var missionDB MissionDB
	err := r.querier.QueryRow(
		ctx,
		query,
		missionCreate.ClientID,
		missionCreate.Title,
		missionCreate.Description,
		missionCreate.StartAddress,
		missionCreate.EndAddress,
		missionCreate.RecipientName,
		missionCreate.RecipientPhone,
		missionCreate.ScheduledAt,
		missionCreate.DeliveryType,
		entities.MissionPending.String(),
	).Scan(missionFields(&missionDB)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected mission repository create error: %w", err)
	}

	return ToDomain(&missionDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Mission, error) {
	query := `SELECT ` + missionColumns + ` FROM missions WHERE id = $1`

	var missionDB MissionDB
	err := r.querier.QueryRow(ctx, query, id).Scan(missionFields(&missionDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, mission.ErrMissionNotFound
		}
		return nil, fmt.Errorf("unexpected mission repository getbyid error: %w", err)
	}

	return ToDomain(&missionDB), nil
}

// Claim - compare-and-swap: строка обновляется только пока миссия
// pending и без исполнителя. Ноль затронутых строк - проигранная гонка,
// интерпретацию оставляем сервису.
func (r *Repository) Claim(ctx context.Context, missionID, courierID uuid.UUID) (int64, error) {
	builder := qb.
		Update("missions").
		Set("status", entities.MissionAssigned.String()).
		Set("livreur_id", courierID).
		Where(sq.Eq{
			"id":         missionID,
			"status":     statusStrings(entities.ClaimableStatuses),
			"livreur_id": nil,
		})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected mission repository claim error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected mission repository claim error: %w", err)
	}

	return result.RowsAffected(), nil
}

// Start допускает запуск из assigned назначенным курьером и из pending -
// тогда COALESCE одновременно назначает курьера (claim-and-start).
func (r *Repository) Start(ctx context.Context, missionID, courierID uuid.UUID) (int64, error) {
	builder := qb.
		Update("missions").
		Set("status", entities.MissionInDelivery.String()).
		Set("livreur_id", sq.Expr("COALESCE(livreur_id, ?)", courierID)).
		Where(sq.Eq{"id": missionID}).
		Where(sq.Or{
			sq.Eq{
				"status":     entities.MissionAssigned.String(),
				"livreur_id": courierID,
			},
			sq.Eq{
				"status":     entities.MissionPending.String(),
				"livreur_id": nil,
			},
		})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected mission repository start error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected mission repository start error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) Complete(ctx context.Context, missionID, courierID uuid.UUID, confirmedAt time.Time) (int64, error) {
	builder := qb.
		Update("missions").
		Set("status", entities.MissionDelivered.String()).
		Set("delivery_confirmed_at", confirmedAt).
		Where(sq.Eq{
			"id":         missionID,
			"status":     statusStrings(entities.CompletableStatuses),
			"livreur_id": courierID,
		})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected mission repository complete error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected mission repository complete error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) Cancel(ctx context.Context, missionID, clientID uuid.UUID) (int64, error) {
	builder := qb.
		Update("missions").
		Set("status", entities.MissionCancelled.String()).
		Where(sq.Eq{
			"id":        missionID,
			"client_id": clientID,
			"status":    statusStrings(entities.CancellableStatuses),
		})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected mission repository cancel error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected mission repository cancel error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) ListAvailable(ctx context.Context, limit int) ([]entities.Mission, error) {
	query := `
		SELECT ` + missionColumns + `
		FROM missions
		WHERE status = $1 AND livreur_id IS NULL
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, entities.MissionPending.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected mission repository list available error: %w", err)
	}
	defer rows.Close()

	return scanMissions(rows)
}

func (r *Repository) ListByClient(ctx context.Context, clientID uuid.UUID, statuses []entities.MissionStatusType, limit int) ([]entities.Mission, error) {
	return r.listByOwner(ctx, sq.Eq{"client_id": clientID}, statuses, limit)
}

func (r *Repository) ListByCourier(ctx context.Context, courierID uuid.UUID, statuses []entities.MissionStatusType, limit int) ([]entities.Mission, error) {
	return r.listByOwner(ctx, sq.Eq{"livreur_id": courierID}, statuses, limit)
}

func (r *Repository) listByOwner(ctx context.Context, owner sq.Eq, statuses []entities.MissionStatusType, limit int) ([]entities.Mission, error) {
	builder := qb.
		Select(missionColumns).
		From("missions").
		Where(owner).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	if len(statuses) > 0 {
		builder = builder.Where(sq.Eq{"status": statusStrings(statuses)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected mission repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected mission repository list error: %w", err)
	}
	defer rows.Close()

	return scanMissions(rows)
}

func (r *Repository) CountAvailable(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM missions WHERE status = $1 AND livreur_id IS NULL`

	var count int64
	err := r.querier.QueryRow(ctx, query, entities.MissionPending.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected mission repository count available error: %w", err)
	}
	return count, nil
}

func (r *Repository) CountByClient(ctx context.Context, clientID uuid.UUID, statuses []entities.MissionStatusType) (int64, error) {
	builder := qb.
		Select("COUNT(*)").
		From("missions").
		Where(sq.Eq{"client_id": clientID})

	if len(statuses) > 0 {
		builder = builder.Where(sq.Eq{"status": statusStrings(statuses)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected mission repository count error: %w", err)
	}

	var count int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected mission repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) DeliveredTotalByClient(ctx context.Context, clientID uuid.UUID) (count, total int64, err error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(prix), 0)
		FROM missions
		WHERE client_id = $1 AND status = $2`

	err = r.querier.QueryRow(ctx, query, clientID, entities.MissionDelivered.String()).Scan(&count, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected mission repository delivered totals error: %w", err)
	}
	return count, total, nil
}

func (r *Repository) DeliveredTotalByCourier(ctx context.Context, courierID uuid.UUID) (count, total int64, err error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(prix), 0)
		FROM missions
		WHERE livreur_id = $1 AND status = $2`

	err = r.querier.QueryRow(ctx, query, courierID, entities.MissionDelivered.String()).Scan(&count, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected mission repository delivered totals error: %w", err)
	}
	return count, total, nil
}

func missionFields(m *MissionDB) []interface{} {
	return []interface{}{
		&m.ID,
		&m.ClientID,
		&m.LivreurID,
		&m.Title,
		&m.Description,
		&m.StartAddress,
		&m.EndAddress,
		&m.RecipientName,
		&m.RecipientPhone,
		&m.ScheduledAt,
		&m.DeliveryType,
		&m.Prix,
		&m.Status,
		&m.CreatedAt,
		&m.DeliveryConfirmedAt,
	}
}

func scanMissions(rows pgx.Rows) ([]entities.Mission, error) {
	missionModels := make([]MissionDB, 0, 8)
	for rows.Next() {
		var missionDB MissionDB
		if err := rows.Scan(missionFields(&missionDB)...); err != nil {
			return nil, fmt.Errorf("unexpected mission repository scan error: %w", err)
		}
		missionModels = append(missionModels, missionDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected mission repository rows error: %w", err)
	}

	return ToDomainList(missionModels), nil
}
