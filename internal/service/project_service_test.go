package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pankajneema/curiousdevs0.1/internal/models"
	"github.com/pankajneema/curiousdevs0.1/internal/repository"
)

type fakeProjectStore struct {
	projects map[string]models.Project
}

func newFakeProjectStore(projects ...models.Project) *fakeProjectStore {
	store := &fakeProjectStore{projects: make(map[string]models.Project)}
	for _, p := range projects {
		store.projects[p.ID] = p
	}
	return store
}

func (s *fakeProjectStore) Create(ctx context.Context, project models.Project) error {
	s.projects[project.ID] = project
	return nil
}

func (s *fakeProjectStore) GetByID(ctx context.Context, id string) (models.Project, error) {
	project, ok := s.projects[id]
	if !ok {
		return models.Project{}, repository.ErrProjectNotFound
	}
	return project, nil
}

func (s *fakeProjectStore) ListAll(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	for _, p := range s.projects {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeProjectStore) ListByOwner(ctx context.Context, userID string) ([]models.Project, error) {
	var out []models.Project
	for _, p := range s.projects {
		if p.CreatedBy == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeProjectStore) Update(ctx context.Context, project models.Project) error {
	if _, ok := s.projects[project.ID]; !ok {
		return repository.ErrProjectNotFound
	}
	s.projects[project.ID] = project
	return nil
}

type fakeMessageStore struct {
	messages []models.Message
}

func (s *fakeMessageStore) Create(ctx context.Context, message models.Message) error {
	s.messages = append(s.messages, message)
	return nil
}

func (s *fakeMessageStore) ListByProject(ctx context.Context, projectID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range s.messages {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out, nil
}

func newTestProjectService(store *fakeProjectStore) *ProjectService {
	return NewProjectService(store, &fakeMessageStore{}, zerolog.Nop())
}

var (
	owner = models.User{ID: "owner-1", Role: models.UserRoleCustomer}
	admin = models.User{ID: "admin-1", Role: models.UserRoleAdmin}
	other = models.User{ID: "other-1", Role: models.UserRoleCustomer}
)

func projectWithAmounts(id string, amount, paid *float64) models.Project {
	return models.Project{ID: id, CreatedBy: owner.ID, ProjectAmount: amount, PaidAmount: paid}
}

func TestProcessPayment_SettlesInFull(t *testing.T) {
	amount, paid := 1000.0, 400.0
	store := newFakeProjectStore(projectWithAmounts("p1", &amount, &paid))
	svc := newTestProjectService(store)

	settled, err := svc.ProcessPayment(context.Background(), owner, "p1")
	if err != nil {
		t.Fatalf("ProcessPayment() error: %v", err)
	}
	if settled != 1000 {
		t.Errorf("settled = %v, expected 1000", settled)
	}

	stored := store.projects["p1"]
	if stored.PaidAmount == nil || *stored.PaidAmount != 1000 {
		t.Errorf("stored paid amount = %v, expected 1000", stored.PaidAmount)
	}
	if stored.PaymentStatus == nil || *stored.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("stored payment status = %v, expected paid", stored.PaymentStatus)
	}
}

func TestProcessPayment_NothingDue(t *testing.T) {
	amount := 500.0
	tests := []struct {
		name    string
		project models.Project
	}{
		{"no amount set", projectWithAmounts("p1", nil, nil)},
		{"zero amount", projectWithAmounts("p2", floatPtr(0), nil)},
		{"already settled", projectWithAmounts("p3", &amount, &amount)},
		{"overpaid", projectWithAmounts("p4", floatPtr(100), floatPtr(250))},
	}

	for _, test := range tests {
		store := newFakeProjectStore(test.project)
		svc := newTestProjectService(store)

		_, err := svc.ProcessPayment(context.Background(), owner, test.project.ID)
		if !errors.Is(err, ErrNothingDue) {
			t.Errorf("%s: error = %v, expected ErrNothingDue", test.name, err)
		}
	}
}

func TestProcessPayment_Access(t *testing.T) {
	amount := 100.0
	store := newFakeProjectStore(projectWithAmounts("p1", &amount, nil))
	svc := newTestProjectService(store)

	if _, err := svc.ProcessPayment(context.Background(), other, "p1"); !errors.Is(err, ErrProjectAccess) {
		t.Errorf("stranger: error = %v, expected ErrProjectAccess", err)
	}
	if _, err := svc.ProcessPayment(context.Background(), owner, "missing"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("missing project: error = %v, expected ErrProjectNotFound", err)
	}
}

func TestCreateProject_SeedsDefaults(t *testing.T) {
	store := newFakeProjectStore()
	svc := newTestProjectService(store)

	project, err := svc.Create(context.Background(), owner.ID, CreateProjectInput{Title: "Site"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if project.Status != models.ProjectStatusInProgress {
		t.Errorf("status = %q, expected %q", project.Status, models.ProjectStatusInProgress)
	}
	if len(project.Phases) != 3 {
		t.Errorf("expected 3 seeded phases, got %d", len(project.Phases))
	}
	if project.CreatedBy != owner.ID {
		t.Errorf("created_by = %q, expected %q", project.CreatedBy, owner.ID)
	}
}

func TestListFor_ScopesByRole(t *testing.T) {
	store := newFakeProjectStore(
		models.Project{ID: "p1", CreatedBy: owner.ID},
		models.Project{ID: "p2", CreatedBy: other.ID},
	)
	svc := newTestProjectService(store)

	mine, err := svc.ListFor(context.Background(), owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].ID != "p1" {
		t.Errorf("customer list = %+v, expected only p1", mine)
	}

	all, err := svc.ListFor(context.Background(), admin)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("admin list has %d projects, expected 2", len(all))
	}
}

func TestUpdate_PartialApply(t *testing.T) {
	progress := 30
	stack := []string{"go"}
	store := newFakeProjectStore(models.Project{ID: "p1", CreatedBy: owner.ID, Status: "pending", TechStack: stack})
	svc := newTestProjectService(store)

	status := "in_progress"
	updated, err := svc.Update(context.Background(), "p1", UpdateProjectInput{
		Status:             &status,
		ProgressPercentage: &progress,
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Status != "in_progress" {
		t.Errorf("status = %q, expected in_progress", updated.Status)
	}
	if updated.ProgressPercentage == nil || *updated.ProgressPercentage != 30 {
		t.Errorf("progress = %v, expected 30", updated.ProgressPercentage)
	}
	if len(updated.TechStack) != 1 || updated.TechStack[0] != "go" {
		t.Errorf("untouched tech stack changed: %v", updated.TechStack)
	}
}

func floatPtr(v float64) *float64 { return &v }
