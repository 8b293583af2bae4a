package service

import (
	"context"
	"time"

	"github.com/pankajneema/curiousdevs0.1/internal/models"
)

// The store interfaces below are the slices of the repository layer each
// service actually touches; the repository package satisfies all of them.

type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

type ProjectStore interface {
	Create(ctx context.Context, project models.Project) error
	GetByID(ctx context.Context, id string) (models.Project, error)
	ListAll(ctx context.Context) ([]models.Project, error)
	ListByOwner(ctx context.Context, userID string) ([]models.Project, error)
	Update(ctx context.Context, project models.Project) error
}

type MessageStore interface {
	Create(ctx context.Context, message models.Message) error
	ListByProject(ctx context.Context, projectID string) ([]models.Message, error)
}

type LeadStore interface {
	Create(ctx context.Context, lead models.Lead) error
	ExistsByContact(ctx context.Context, email string, mobile string) (bool, error)
	ListAll(ctx context.Context) ([]models.Lead, error)
}

type BillStore interface {
	Create(ctx context.Context, bill models.Bill) error
	GetByID(ctx context.Context, id string) (models.Bill, error)
	ListByUser(ctx context.Context, userID string) ([]models.Bill, error)
	ListAll(ctx context.Context) ([]models.Bill, error)
	MarkPaid(ctx context.Context, id string, paidOn time.Time) error
}

// LeadNotifier is the outbound mail surface the lead service depends on.
type LeadNotifier interface {
	LeadNotification(lead models.Lead) error
}
