package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pankajneema/curiousdevs0.1/internal/models"
)

type fakeLeadStore struct {
	leads []models.Lead
}

func (s *fakeLeadStore) Create(ctx context.Context, lead models.Lead) error {
	s.leads = append(s.leads, lead)
	return nil
}

func (s *fakeLeadStore) ExistsByContact(ctx context.Context, email string, mobile string) (bool, error) {
	for _, l := range s.leads {
		if l.Email == email && l.Mobile == mobile {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeLeadStore) ListAll(ctx context.Context) ([]models.Lead, error) {
	return s.leads, nil
}

type fakeNotifier struct {
	sent []models.Lead
	err  error
}

func (n *fakeNotifier) LeadNotification(lead models.Lead) error {
	n.sent = append(n.sent, lead)
	return n.err
}

func TestCreateLead_DeduplicatesOnContact(t *testing.T) {
	store := &fakeLeadStore{}
	svc := NewLeadService(store, &fakeNotifier{}, zerolog.Nop())
	input := CreateLeadInput{Name: "A", Email: "a@b.com", Mobile: "9876543210"}

	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first Create() error: %v", err)
	}

	_, err := svc.Create(context.Background(), input)
	if !errors.Is(err, ErrDuplicateLead) {
		t.Errorf("duplicate: error = %v, expected ErrDuplicateLead", err)
	}
	if len(store.leads) != 1 {
		t.Errorf("store holds %d leads, expected 1", len(store.leads))
	}
}

func TestCreateLead_NormalizesEmail(t *testing.T) {
	store := &fakeLeadStore{}
	svc := NewLeadService(store, &fakeNotifier{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), CreateLeadInput{Email: "  A@B.Com ", Mobile: "9876543210"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Same contact spelled differently still counts as a duplicate.
	_, err := svc.Create(context.Background(), CreateLeadInput{Email: "a@b.com", Mobile: " 9876543210"})
	if !errors.Is(err, ErrDuplicateLead) {
		t.Errorf("error = %v, expected ErrDuplicateLead", err)
	}
	if store.leads[0].Email != "a@b.com" {
		t.Errorf("stored email = %q, expected a@b.com", store.leads[0].Email)
	}
}

func TestCreateLead_NotificationIsBestEffort(t *testing.T) {
	store := &fakeLeadStore{}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewLeadService(store, notifier, zerolog.Nop())

	lead, err := svc.Create(context.Background(), CreateLeadInput{Email: "a@b.com", Mobile: "9876543210"})
	if err != nil {
		t.Fatalf("a failed notification must not fail the lead, got %v", err)
	}
	if lead.ID == "" {
		t.Error("lead was not assigned an id")
	}
	if len(notifier.sent) != 1 {
		t.Errorf("notifier called %d times, expected 1", len(notifier.sent))
	}
	if len(store.leads) != 1 {
		t.Errorf("store holds %d leads, expected 1", len(store.leads))
	}
}
