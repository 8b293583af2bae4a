package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pankajneema/curiousdevs0.1/internal/models"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, contact models.ContactRequest) error {
	const query = `
		INSERT INTO contact_requests (
			id, name, email, phone, message, created_at
		) VALUES (
			$1, $2, $3, $4, $5, NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Message,
	)
	return err
}

func (r *ContactRepository) ListAll(ctx context.Context) ([]models.ContactRequest, error) {
	const query = `
		SELECT id, name, email, phone, message, created_at
		FROM contact_requests
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.ContactRequest
	for rows.Next() {
		var contact models.ContactRequest
		if err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Phone,
			&contact.Message,
			&contact.CreatedAt,
		); err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}
