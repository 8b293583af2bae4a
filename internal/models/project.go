package models

import "time"

// Project status values the portal knows about. The column is free text so
// records written by the previous deployment keep working; compare
// case-insensitively.
const (
	ProjectStatusRequestSend = "request send"
	ProjectStatusPending     = "pending"
	ProjectStatusAccepted    = "accepted"
	ProjectStatusInProgress  = "in_progress"
	ProjectStatusOngoing     = "ongoing"
	ProjectStatusCompleted   = "completed"
)

const (
	PhaseStatusPending    = "pending"
	PhaseStatusInProgress = "in_progress"
	PhaseStatusCompleted  = "completed"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Phase is one ordered milestone of a project. Order is positional within
// Project.Phases; CompletedOn is only meaningful for completed phases.
type Phase struct {
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	CompletedOn *time.Time `json:"completed_on,omitempty"`
}

type Project struct {
	ID                 string     `json:"id"`
	CreatedBy          string     `json:"created_by"`
	Title              string     `json:"title"`
	ServiceType        string     `json:"service_type"`
	Description        string     `json:"description"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	ProgressPercentage *int       `json:"progress_percentage,omitempty"`
	TechStack          []string   `json:"tech_stack,omitempty"`
	ProjectLeadID      *string    `json:"project_lead_id,omitempty"`
	AssignedTeam       []string   `json:"assigned_team,omitempty"`
	Phases             []Phase    `json:"phases,omitempty"`
	DemoLink           *string    `json:"demo_link,omitempty"`
	PaymentLink        *string    `json:"payment_link,omitempty"`
	PaymentStatus      *string    `json:"payment_status,omitempty"`
	ProjectAmount      *float64   `json:"project_amount,omitempty"`
	PaidAmount         *float64   `json:"paid_amount,omitempty"`
}

// DefaultPhases seeds a freshly created project: requirements are done the
// moment the request is accepted, everything else is ahead.
func DefaultPhases(now time.Time) []Phase {
	return []Phase{
		{Name: "Requirement", Status: PhaseStatusCompleted, CompletedOn: &now},
		{Name: "Design", Status: PhaseStatusPending},
		{Name: "Development", Status: PhaseStatusPending},
	}
}

// Message is a chat entry attached to a project. Append-only; listed in
// created_at ascending order.
type Message struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	SenderID  string    `json:"sender_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}
