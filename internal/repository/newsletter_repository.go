package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type NewsletterRepository struct {
	pool *pgxpool.Pool
}

func NewNewsletterRepository(pool *pgxpool.Pool) *NewsletterRepository {
	return &NewsletterRepository{pool: pool}
}

func (r *NewsletterRepository) Exists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM newsletter_subscribers WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *NewsletterRepository) Subscribe(ctx context.Context, email string) error {
	const query = `
		INSERT INTO newsletter_subscribers (email, subscribed_at)
		VALUES ($1, NOW())
		ON CONFLICT (email) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, email)
	return err
}
