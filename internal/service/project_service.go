package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/pankajneema/curiousdevs0.1/internal/ids"
	"github.com/pankajneema/curiousdevs0.1/internal/metrics"
	"github.com/pankajneema/curiousdevs0.1/internal/models"
	"github.com/pankajneema/curiousdevs0.1/internal/repository"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectAccess   = errors.New("not allowed to access this project")
	ErrNothingDue      = errors.New("no outstanding amount on this project")
)

type ProjectService struct {
	projects ProjectStore
	messages MessageStore
	log      zerolog.Logger
}

func NewProjectService(projects ProjectStore, messages MessageStore, log zerolog.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		messages: messages,
		log:      log,
	}
}

type CreateProjectInput struct {
	Title       string
	ServiceType string
	Description string
}

func (s *ProjectService) Create(ctx context.Context, userID string, input CreateProjectInput) (models.Project, error) {
	project := models.Project{
		ID:          ids.New(),
		CreatedBy:   userID,
		Title:       input.Title,
		ServiceType: input.ServiceType,
		Description: input.Description,
		Status:      models.ProjectStatusInProgress,
		Phases:      models.DefaultPhases(time.Now().UTC()),
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// ListFor scopes the project list by role: admins see every project,
// customers only their own.
func (s *ProjectService) ListFor(ctx context.Context, user models.User) ([]models.Project, error) {
	if user.Role == models.UserRoleAdmin {
		return s.projects.ListAll(ctx)
	}
	return s.projects.ListByOwner(ctx, user.ID)
}

func (s *ProjectService) Get(ctx context.Context, user models.User, id string) (models.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}

	if user.Role != models.UserRoleAdmin && project.CreatedBy != user.ID {
		return models.Project{}, ErrProjectAccess
	}
	return project, nil
}

// UpdateProjectInput carries the admin-editable fields; nil means "leave as is".
type UpdateProjectInput struct {
	Status             *string
	TechStack          []string
	ProjectLeadID      *string
	AssignedTeam       []string
	ProgressPercentage *int
	DemoLink           *string
	PaymentLink        *string
	PaymentStatus      *string
	Phases             []models.Phase
	ProjectAmount      *float64
	PaidAmount         *float64
}

func (s *ProjectService) Update(ctx context.Context, id string, input UpdateProjectInput) (models.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}

	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.TechStack != nil {
		project.TechStack = input.TechStack
	}
	if input.ProjectLeadID != nil {
		project.ProjectLeadID = input.ProjectLeadID
	}
	if input.AssignedTeam != nil {
		project.AssignedTeam = input.AssignedTeam
	}
	if input.ProgressPercentage != nil {
		if *input.ProgressPercentage < 0 || *input.ProgressPercentage > 100 {
			s.log.Warn().
				Str("project_id", id).
				Int("progress", *input.ProgressPercentage).
				Msg("progress percentage outside 0-100 stored as given")
		}
		project.ProgressPercentage = input.ProgressPercentage
	}
	if input.DemoLink != nil {
		project.DemoLink = input.DemoLink
	}
	if input.PaymentLink != nil {
		project.PaymentLink = input.PaymentLink
	}
	if input.PaymentStatus != nil {
		project.PaymentStatus = input.PaymentStatus
	}
	if input.Phases != nil {
		project.Phases = input.Phases
	}
	if input.ProjectAmount != nil {
		project.ProjectAmount = input.ProjectAmount
	}
	if input.PaidAmount != nil {
		project.PaidAmount = input.PaidAmount
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) SendMessage(ctx context.Context, user models.User, projectID string, text string) (models.Message, error) {
	if _, err := s.Get(ctx, user, projectID); err != nil {
		return models.Message{}, err
	}

	message := models.Message{
		ID:        ids.New(),
		ProjectID: projectID,
		SenderID:  user.ID,
		Message:   text,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return models.Message{}, err
	}
	return message, nil
}

func (s *ProjectService) ListMessages(ctx context.Context, user models.User, projectID string) ([]models.Message, error) {
	if _, err := s.Get(ctx, user, projectID); err != nil {
		return nil, err
	}
	return s.messages.ListByProject(ctx, projectID)
}

// ProcessPayment settles the project's outstanding amount in full. There is
// no payment provider behind this; the portal records the outcome.
func (s *ProjectService) ProcessPayment(ctx context.Context, user models.User, projectID string) (float64, error) {
	project, err := s.Get(ctx, user, projectID)
	if err != nil {
		return 0, err
	}

	var amount, paid float64
	if project.ProjectAmount != nil {
		amount = *project.ProjectAmount
	}
	if project.PaidAmount != nil {
		paid = *project.PaidAmount
	}
	if amount <= 0 || paid >= amount {
		return 0, ErrNothingDue
	}

	paidStatus := models.PaymentStatusPaid
	project.PaidAmount = &amount
	project.PaymentStatus = &paidStatus

	if err := s.projects.Update(ctx, project); err != nil {
		return 0, err
	}

	metrics.PaymentsProcessed.Inc()
	s.log.Info().
		Str("project_id", projectID).
		Str("user_id", user.ID).
		Float64("paid_amount", amount).
		Msg("project payment recorded")

	return amount, nil
}
