package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pankajneema/curiousdevs0.1/internal/models"
)

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

func (r *MessageRepository) Create(ctx context.Context, message models.Message) error {
	const query = `
		INSERT INTO project_messages (
			id, project_id, sender_id, message, created_at, read
		) VALUES (
			$1, $2, $3, $4, NOW(), FALSE
		)
	`

	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.ProjectID,
		message.SenderID,
		message.Message,
	)
	return err
}

func (r *MessageRepository) ListByProject(ctx context.Context, projectID string) ([]models.Message, error) {
	const query = `
		SELECT id, project_id, sender_id, message, created_at, read
		FROM project_messages
		WHERE project_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var message models.Message
		if err := rows.Scan(
			&message.ID,
			&message.ProjectID,
			&message.SenderID,
			&message.Message,
			&message.CreatedAt,
			&message.Read,
		); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
