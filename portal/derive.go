package portal

import (
	"strings"

	"github.com/rs/zerolog"
)

// StatusVariant is the visual weight a project status renders with.
type StatusVariant string

const (
	VariantComplete  StatusVariant = "complete"
	VariantSecondary StatusVariant = "secondary"
	VariantOutline   StatusVariant = "outline"
)

// Deriver turns raw project records into display values. Every rule is a
// pure function of its input; the logger only flags anomalous records,
// it never changes the result.
type Deriver struct {
	log zerolog.Logger
}

func NewDeriver(log zerolog.Logger) *Deriver {
	return &Deriver{log: log}
}

// DisplayProgress yields the percentage shown for a project. An explicit
// progress field wins verbatim, even outside 0 to 100; absent that, the
// status decides. Unknown statuses show zero.
func (d *Deriver) DisplayProgress(p Project) int {
	if p.ProgressPercentage != nil {
		value := *p.ProgressPercentage
		if value < 0 || value > 100 {
			d.log.Warn().Str("project_id", p.ID).Int("progress", value).
				Msg("progress outside expected range, showing as stored")
		}
		return value
	}

	switch strings.ToLower(p.Status) {
	case "pending", "request send":
		return 25
	case "in_progress", "ongoing", "accepted":
		return 60
	case "completed":
		return 100
	default:
		return 0
	}
}

// StatusVariant maps a project status to its badge style. Unknown
// statuses fall back to the secondary style.
func (d *Deriver) StatusVariant(status string) StatusVariant {
	switch strings.ToLower(status) {
	case "completed":
		return VariantComplete
	case "in_progress":
		return VariantSecondary
	case "pending", "request send":
		return VariantOutline
	default:
		return VariantSecondary
	}
}

// RemainingPayment is what the customer still owes on a project. Missing
// amounts count as zero and negative stored values are treated as zero
// on each side, but an overpaid project yields a negative remainder as
// stored, flagged in the log.
func (d *Deriver) RemainingPayment(p Project) float64 {
	var amount, paid float64
	if p.ProjectAmount != nil && *p.ProjectAmount > 0 {
		amount = *p.ProjectAmount
	}
	if p.PaidAmount != nil && *p.PaidAmount > 0 {
		paid = *p.PaidAmount
	}
	if paid > amount {
		d.log.Warn().Str("project_id", p.ID).Float64("amount", amount).Float64("paid", paid).
			Msg("paid amount exceeds project amount")
	}
	return amount - paid
}

// BillingSummary aggregates payment figures across a set of projects.
type BillingSummary struct {
	Count          int     `json:"count"`
	TotalAmount    float64 `json:"total_amount"`
	TotalPaid      float64 `json:"total_paid"`
	TotalRemaining float64 `json:"total_remaining"`
}

func (d *Deriver) Summarize(projects []Project) BillingSummary {
	summary := BillingSummary{Count: len(projects)}
	for _, p := range projects {
		if p.ProjectAmount != nil && *p.ProjectAmount > 0 {
			summary.TotalAmount += *p.ProjectAmount
		}
		if p.PaidAmount != nil && *p.PaidAmount > 0 {
			summary.TotalPaid += *p.PaidAmount
		}
		summary.TotalRemaining += d.RemainingPayment(p)
	}
	return summary
}
