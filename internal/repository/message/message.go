package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"cliver/internal/entities"
	"cliver/internal/repository"
	"cliver/internal/service/message"
)

const messageColumns = `id, mission_id, sender_id, receiver_id, content, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, messageCreate entities.MessageCreate) (*entities.Message, error) {
	query := `
		INSERT INTO messages (mission_id, sender_id, receiver_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + messageColumns

	var messageDB MessageDB
	err := r.querier.QueryRow(
		ctx,
		query,
		messageCreate.MissionID,
		messageCreate.SenderID,
		messageCreate.ReceiverID,
		messageCreate.Content,
	).Scan(
		&messageDB.ID,
		&messageDB.MissionID,
		&messageDB.SenderID,
		&messageDB.ReceiverID,
		&messageDB.Content,
		&messageDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, message.ErrMissionNotFound
		}
		return nil, fmt.Errorf("unexpected message repository create error: %w", err)
	}

	return ToDomain(&messageDB), nil
}

func (r *Repository) ListByMission(ctx context.Context, missionID uuid.UUID, limit int) ([]entities.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE mission_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, missionID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected message repository list error: %w", err)
	}
	defer rows.Close()

	messageModels := make([]MessageDB, 0, 8)
	for rows.Next() {
		var messageDB MessageDB
		err = rows.Scan(
			&messageDB.ID,
			&messageDB.MissionID,
			&messageDB.SenderID,
			&messageDB.ReceiverID,
			&messageDB.Content,
			&messageDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected message repository scan error: %w", err)
		}
		messageModels = append(messageModels, messageDB)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected message repository rows error: %w", err)
	}

	return ToDomainList(messageModels), nil
}
