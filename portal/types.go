// Package portal is the client side of the CuriousDevs portal API: a single
// gateway for every backend call, a session store that owns the one bearer
// token, a view gate deriving what the caller may see, and pure helpers that
// turn project records into display state.
package portal

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Role     Role   `json:"role"`
}

type Phase struct {
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	CompletedOn *time.Time `json:"completed_on,omitempty"`
}

type Project struct {
	ID                 string   `json:"id"`
	CreatedBy          string   `json:"created_by"`
	Title              string   `json:"title"`
	ServiceType        string   `json:"service_type"`
	Status             string   `json:"status"`
	Description        string   `json:"description"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
	ProgressPercentage *int     `json:"progress_percentage,omitempty"`
	TechStack          []string `json:"tech_stack,omitempty"`
	ProjectLeadID      *string  `json:"project_lead_id,omitempty"`
	AssignedTeam       []string `json:"assigned_team,omitempty"`
	Phases             []Phase  `json:"phases,omitempty"`
	DemoLink           *string  `json:"demo_link,omitempty"`
	PaymentLink        *string  `json:"payment_link,omitempty"`
	PaymentStatus      *string  `json:"payment_status,omitempty"`
	ProjectAmount      *float64 `json:"project_amount,omitempty"`
	PaidAmount         *float64 `json:"paid_amount,omitempty"`
}

type Message struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	SenderID  string    `json:"sender_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

type Bill struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"project_id"`
	UserID    string     `json:"user_id"`
	Amount    float64    `json:"amount"`
	DueDate   time.Time  `json:"due_date"`
	IssuedOn  time.Time  `json:"issued_on"`
	Status    string     `json:"status"`
	PaidOn    *time.Time `json:"paid_on,omitempty"`
}

type Lead struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Mobile         string    `json:"mobile"`
	Project        string    `json:"project"`
	ProjectType    string    `json:"project_type"`
	ProjectDetails string    `json:"project_details"`
	CreatedAt      time.Time `json:"created_at"`
}

type ContactRequest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type SignupProfile struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type CreateProjectInput struct {
	Title       string `json:"title"`
	ServiceType string `json:"service_type,omitempty"`
	Description string `json:"description"`
}

type UpdateProjectInput struct {
	Status             *string  `json:"status,omitempty"`
	TechStack          []string `json:"tech_stack,omitempty"`
	ProjectLeadID      *string  `json:"project_lead_id,omitempty"`
	AssignedTeam       []string `json:"assigned_team,omitempty"`
	ProgressPercentage *int     `json:"progress_percentage,omitempty"`
	DemoLink           *string  `json:"demo_link,omitempty"`
	PaymentLink        *string  `json:"payment_link,omitempty"`
	PaymentStatus      *string  `json:"payment_status,omitempty"`
	Phases             []Phase  `json:"phases,omitempty"`
	ProjectAmount      *float64 `json:"project_amount,omitempty"`
	PaidAmount         *float64 `json:"paid_amount,omitempty"`
}

type CreateLeadInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	Project        string `json:"project"`
	ProjectType    string `json:"project_type"`
	ProjectDetails string `json:"project_details"`
}

type CreateContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type CreateBillInput struct {
	ProjectID string    `json:"project_id"`
	Amount    float64   `json:"amount"`
	DueDate   time.Time `json:"due_date"`
}
