package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pankajneema/curiousdevs0.1/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

const projectColumns = `
	id, created_by, title, service_type, description, status,
	created_at, updated_at, progress_percentage, tech_stack, project_lead_id,
	assigned_team, phases, demo_link, payment_link, payment_status,
	project_amount, paid_amount
`

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, project models.Project) error {
	const query = `
		INSERT INTO projects (
			id, created_by, title, service_type, description, status,
			created_at, updated_at, phases
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW(), NOW(), $7
		)
	`

	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.CreatedBy,
		project.Title,
		project.ServiceType,
		project.Description,
		project.Status,
		project.Phases,
	)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (models.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}
	return project, nil
}

func (r *ProjectRepository) ListAll(ctx context.Context) ([]models.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, userID string) ([]models.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE created_by = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

// Update writes the full mutable column set. Callers load the row, apply
// their changes and hand the result back.
func (r *ProjectRepository) Update(ctx context.Context, project models.Project) error {
	const query = `
		UPDATE projects SET
			status = $2,
			updated_at = NOW(),
			progress_percentage = $3,
			tech_stack = $4,
			project_lead_id = $5,
			assigned_team = $6,
			phases = $7,
			demo_link = $8,
			payment_link = $9,
			payment_status = $10,
			project_amount = $11,
			paid_amount = $12
		WHERE id = $1
	`

	cmd, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Status,
		project.ProgressPercentage,
		project.TechStack,
		project.ProjectLeadID,
		project.AssignedTeam,
		project.Phases,
		project.DemoLink,
		project.PaymentLink,
		project.PaymentStatus,
		project.ProjectAmount,
		project.PaidAmount,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.CreatedBy,
		&project.Title,
		&project.ServiceType,
		&project.Description,
		&project.Status,
		&project.CreatedAt,
		&project.UpdatedAt,
		&project.ProgressPercentage,
		&project.TechStack,
		&project.ProjectLeadID,
		&project.AssignedTeam,
		&project.Phases,
		&project.DemoLink,
		&project.PaymentLink,
		&project.PaymentStatus,
		&project.ProjectAmount,
		&project.PaidAmount,
	)
	return project, err
}

func collectProjects(rows pgx.Rows) ([]models.Project, error) {
	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}
