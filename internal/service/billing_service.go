package service

import (
	"context"
	"errors"
	"time"

	"github.com/pankajneema/curiousdevs0.1/internal/ids"
	"github.com/pankajneema/curiousdevs0.1/internal/models"
	"github.com/pankajneema/curiousdevs0.1/internal/repository"
)

var (
	ErrBillNotFound = errors.New("bill not found")
	ErrBillAccess   = errors.New("not allowed to access this bill")
)

type BillingService struct {
	bills    BillStore
	projects ProjectStore
}

func NewBillingService(bills BillStore, projects ProjectStore) *BillingService {
	return &BillingService{
		bills:    bills,
		projects: projects,
	}
}

type CreateBillInput struct {
	ProjectID string
	Amount    float64
	DueDate   time.Time
}

// Create issues a bill against a project; the debtor is always the project
// owner, never a caller-supplied user.
func (s *BillingService) Create(ctx context.Context, input CreateBillInput) (models.Bill, error) {
	project, err := s.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return models.Bill{}, ErrProjectNotFound
		}
		return models.Bill{}, err
	}

	bill := models.Bill{
		ID:        ids.New(),
		ProjectID: project.ID,
		UserID:    project.CreatedBy,
		Amount:    input.Amount,
		DueDate:   input.DueDate,
		Status:    models.BillStatusUnpaid,
	}

	if err := s.bills.Create(ctx, bill); err != nil {
		return models.Bill{}, err
	}
	return bill, nil
}

func (s *BillingService) ListMine(ctx context.Context, userID string) ([]models.Bill, error) {
	return s.bills.ListByUser(ctx, userID)
}

func (s *BillingService) ListAll(ctx context.Context) ([]models.Bill, error) {
	return s.bills.ListAll(ctx)
}

func (s *BillingService) MarkPaid(ctx context.Context, user models.User, billID string) error {
	bill, err := s.bills.GetByID(ctx, billID)
	if err != nil {
		if errors.Is(err, repository.ErrBillNotFound) {
			return ErrBillNotFound
		}
		return err
	}

	if user.Role != models.UserRoleAdmin && bill.UserID != user.ID {
		return ErrBillAccess
	}

	return s.bills.MarkPaid(ctx, billID, time.Now().UTC())
}
