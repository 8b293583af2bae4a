package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/pankajneema/curiousdevs0.1/internal/metrics"
	"github.com/pankajneema/curiousdevs0.1/internal/notify"
	"github.com/pankajneema/curiousdevs0.1/internal/repository"
)

// Scheduler runs the recurring back-office work: a daily digest mail of
// overdue bills and fresh leads so the agency does not have to poll the
// admin dashboard.
type Scheduler struct {
	cron     *cron.Cron
	bills    *repository.BillRepository
	leads    *repository.LeadRepository
	mailer   *notify.Mailer
	schedule string
	log      zerolog.Logger
}

func NewScheduler(
	bills *repository.BillRepository,
	leads *repository.LeadRepository,
	mailer *notify.Mailer,
	schedule string,
	log zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		bills:    bills,
		leads:    leads,
		mailer:   mailer,
		schedule: schedule,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runDigest); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for a running job to finish, but not longer than 5 seconds.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC()

	overdue, err := s.bills.ListUnpaidDueBefore(ctx, now)
	if err != nil {
		s.log.Error().Err(err).Msg("digest: list overdue bills failed")
		return
	}

	leads, err := s.leads.ListCreatedSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		s.log.Error().Err(err).Msg("digest: list new leads failed")
		return
	}

	if err := s.mailer.AdminDigest(overdue, leads); err != nil {
		metrics.DigestMails.WithLabelValues("failed").Inc()
		s.log.Error().Err(err).Msg("digest mail failed")
		return
	}

	if len(overdue) > 0 || len(leads) > 0 {
		metrics.DigestMails.WithLabelValues("sent").Inc()
	}
	s.log.Info().
		Int("overdue_bills", len(overdue)).
		Int("new_leads", len(leads)).
		Msg("admin digest run complete")
}
