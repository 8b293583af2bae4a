package models

import "time"

// Lead is an unauthenticated inquiry captured from the public site. Created
// once, never mutated; only admins ever read it back.
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

type Subscriber struct {
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
