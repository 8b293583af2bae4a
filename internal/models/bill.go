package models

import "time"

const (
	BillStatusUnpaid = "unpaid"
	BillStatusPaid   = "paid"
)

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
