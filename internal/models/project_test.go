package models

import (
	"testing"
	"time"
)

func TestDefaultPhases(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	phases := DefaultPhases(now)

	if len(phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(phases))
	}
	if phases[0].Name != "Requirement" || phases[0].Status != PhaseStatusCompleted {
		t.Errorf("first phase = %+v, expected completed Requirement", phases[0])
	}
	if phases[0].CompletedOn == nil || !phases[0].CompletedOn.Equal(now) {
		t.Error("Requirement phase should carry the creation time")
	}
	for _, phase := range phases[1:] {
		if phase.Status != PhaseStatusPending {
			t.Errorf("phase %s = %s, expected pending", phase.Name, phase.Status)
		}
		if phase.CompletedOn != nil {
			t.Errorf("phase %s should have no completion time", phase.Name)
		}
	}
}
