package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pankajneema/curiousdevs0.1/internal/ids"
	"github.com/pankajneema/curiousdevs0.1/internal/metrics"
	"github.com/pankajneema/curiousdevs0.1/internal/models"
)

var ErrDuplicateLead = errors.New("lead already exists")

type LeadService struct {
	leads  LeadStore
	mailer LeadNotifier
	log    zerolog.Logger
}

func NewLeadService(leads LeadStore, mailer LeadNotifier, log zerolog.Logger) *LeadService {
	return &LeadService{
		leads:  leads,
		mailer: mailer,
		log:    log,
	}
}

type CreateLeadInput struct {
	Name           string
	Email          string
	Mobile         string
	Project        string
	ProjectType    string
	ProjectDetails string
}

// Create captures an inquiry and alerts the agency inbox. The mail is
// best-effort: a lost notification must never lose the lead.
func (s *LeadService) Create(ctx context.Context, input CreateLeadInput) (models.Lead, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Mobile = strings.TrimSpace(input.Mobile)

	exists, err := s.leads.ExistsByContact(ctx, input.Email, input.Mobile)
	if err != nil {
		return models.Lead{}, err
	}
	if exists {
		metrics.LeadsCreated.WithLabelValues("duplicate").Inc()
		return models.Lead{}, ErrDuplicateLead
	}

	lead := models.Lead{
		ID:             ids.New(),
		Name:           input.Name,
		Email:          input.Email,
		Mobile:         input.Mobile,
		Project:        input.Project,
		ProjectType:    input.ProjectType,
		ProjectDetails: input.ProjectDetails,
	}

	if err := s.leads.Create(ctx, lead); err != nil {
		return models.Lead{}, err
	}
	metrics.LeadsCreated.WithLabelValues("created").Inc()

	if err := s.mailer.LeadNotification(lead); err != nil {
		s.log.Error().Err(err).Str("lead_id", lead.ID).Msg("lead notification mail failed")
	}

	return lead, nil
}

func (s *LeadService) ListAll(ctx context.Context) ([]models.Lead, error) {
	return s.leads.ListAll(ctx)
}
