package portal

import (
	"testing"

	"github.com/rs/zerolog"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func newTestDeriver() *Deriver { return NewDeriver(zerolog.Nop()) }

func TestDisplayProgress_StatusFallback(t *testing.T) {
	tests := []struct {
		status   string
		expected int
	}{
		{"pending", 25},
		{"request send", 25},
		{"Request Send", 25},
		{"in_progress", 60},
		{"ongoing", 60},
		{"accepted", 60},
		{"IN_PROGRESS", 60},
		{"completed", 100},
		{"Completed", 100},
		{"cancelled", 0},
		{"", 0},
	}

	d := newTestDeriver()
	for _, test := range tests {
		result := d.DisplayProgress(Project{Status: test.status})
		if result != test.expected {
			t.Errorf("DisplayProgress(status=%q) = %d, expected %d", test.status, result, test.expected)
		}
	}
}

func TestDisplayProgress_ExplicitFieldWins(t *testing.T) {
	d := newTestDeriver()

	p := Project{Status: "completed", ProgressPercentage: intPtr(40)}
	if got := d.DisplayProgress(p); got != 40 {
		t.Errorf("DisplayProgress with explicit 40 = %d, expected 40", got)
	}

	// Out-of-range values are shown as stored, not clamped.
	p = Project{Status: "pending", ProgressPercentage: intPtr(150)}
	if got := d.DisplayProgress(p); got != 150 {
		t.Errorf("DisplayProgress with explicit 150 = %d, expected 150", got)
	}
	p = Project{ProgressPercentage: intPtr(-5)}
	if got := d.DisplayProgress(p); got != -5 {
		t.Errorf("DisplayProgress with explicit -5 = %d, expected -5", got)
	}
}

func TestStatusVariant(t *testing.T) {
	tests := []struct {
		status   string
		expected StatusVariant
	}{
		{"completed", VariantComplete},
		{"COMPLETED", VariantComplete},
		{"in_progress", VariantSecondary},
		{"pending", VariantOutline},
		{"request send", VariantOutline},
		{"ongoing", VariantSecondary},
		{"something else", VariantSecondary},
		{"", VariantSecondary},
	}

	d := newTestDeriver()
	for _, test := range tests {
		result := d.StatusVariant(test.status)
		if result != test.expected {
			t.Errorf("StatusVariant(%q) = %s, expected %s", test.status, result, test.expected)
		}
	}
}

func TestRemainingPayment(t *testing.T) {
	tests := []struct {
		name     string
		amount   *float64
		paid     *float64
		expected float64
	}{
		{"both set", floatPtr(1000), floatPtr(400), 600},
		{"nothing paid", floatPtr(1000), nil, 1000},
		{"no amount", nil, floatPtr(400), -400},
		{"both missing", nil, nil, 0},
		{"negative amount treated as zero", floatPtr(-100), floatPtr(50), -50},
		{"negative paid treated as zero", floatPtr(500), floatPtr(-50), 500},
		{"overpaid stays negative", floatPtr(100), floatPtr(250), -150},
	}

	d := newTestDeriver()
	for _, test := range tests {
		result := d.RemainingPayment(Project{ProjectAmount: test.amount, PaidAmount: test.paid})
		if result != test.expected {
			t.Errorf("%s: RemainingPayment = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestSummarize(t *testing.T) {
	d := newTestDeriver()
	projects := []Project{
		{ProjectAmount: floatPtr(1000), PaidAmount: floatPtr(400)},
		{ProjectAmount: floatPtr(500)},
		{},
	}

	summary := d.Summarize(projects)
	if summary.Count != 3 {
		t.Errorf("Count = %d, expected 3", summary.Count)
	}
	if summary.TotalAmount != 1500 {
		t.Errorf("TotalAmount = %v, expected 1500", summary.TotalAmount)
	}
	if summary.TotalPaid != 400 {
		t.Errorf("TotalPaid = %v, expected 400", summary.TotalPaid)
	}
	if summary.TotalRemaining != 1100 {
		t.Errorf("TotalRemaining = %v, expected 1100", summary.TotalRemaining)
	}
}
