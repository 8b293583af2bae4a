package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pankajneema/curiousdevs0.1/internal/models"
)

type LeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

func (r *LeadRepository) Create(ctx context.Context, lead models.Lead) error {
	const query = `
		INSERT INTO leads (
			id, name, email, mobile, project, project_type, project_details, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Mobile,
		lead.Project,
		lead.ProjectType,
		lead.ProjectDetails,
	)
	return err
}

// ExistsByContact reports whether a lead with the same email and mobile was
// already captured. The same person resubmitting the form is not a new lead.
func (r *LeadRepository) ExistsByContact(ctx context.Context, email string, mobile string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM leads WHERE email = $1 AND mobile = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email, mobile).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *LeadRepository) ListAll(ctx context.Context) ([]models.Lead, error) {
	const query = `
		SELECT id, name, email, mobile, project, project_type, project_details, created_at
		FROM leads
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

func (r *LeadRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]models.Lead, error) {
	const query = `
		SELECT id, name, email, mobile, project, project_type, project_details, created_at
		FROM leads
		WHERE created_at >= $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

func collectLeads(rows pgx.Rows) ([]models.Lead, error) {
	var leads []models.Lead
	for rows.Next() {
		var lead models.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Email,
			&lead.Mobile,
			&lead.Project,
			&lead.ProjectType,
			&lead.ProjectDetails,
			&lead.CreatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}
