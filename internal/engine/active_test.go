package engine

import (
	"testing"

	"github.com/julianstephens/stride/internal/models"
)

func TestSelectActive_HintOverridesData(t *testing.T) {
	goals := []models.Goal{
		{ID: "a", Status: "queued"},
		{ID: "b", Status: "queued"},
	}

	got := SelectActive(goals, "b")
	if got == nil {
		t.Fatal("expected the hinted goal, got nil")
	}
	if got.ID != "b" {
		t.Errorf("expected goal b, got %s", got.ID)
	}
}

func TestSelectActive_TerminalHintIsIgnored(t *testing.T) {
	goals := []models.Goal{
		{ID: "finished", Status: "done"},
		{ID: "current", Status: "active"},
	}

	got := SelectActive(goals, "finished")
	if got == nil {
		t.Fatal("expected fallback to the active goal, got nil")
	}
	if got.ID != "current" {
		t.Errorf("expected goal current, got %s", got.ID)
	}
}

func TestSelectActive_DanglingHintIsIgnored(t *testing.T) {
	goals := []models.Goal{
		{ID: "current", Status: "active"},
	}

	got := SelectActive(goals, "no-such-goal")
	if got == nil || got.ID != "current" {
		t.Errorf("expected goal current despite dangling hint, got %v", got)
	}
}

func TestSelectActive_MultipleActiveResolvesDeterministically(t *testing.T) {
	one, two := 1, 2
	goals := []models.Goal{
		{ID: "b", Status: "active", Order: &two},
		{ID: "a", Status: "active", Order: &one},
	}

	got := SelectActive(goals, "")
	if got == nil {
		t.Fatal("expected an active goal, got nil")
	}
	if got.ID != "a" {
		t.Errorf("expected the lower-order goal a, got %s", got.ID)
	}
}

func TestSelectActive_LabelBreaksOrderTies(t *testing.T) {
	goals := []models.Goal{
		{ID: "z", Title: "Violin", Status: "active"},
		{ID: "y", Title: "Guitar", Status: "active"},
	}

	got := SelectActive(goals, "")
	if got == nil || got.ID != "y" {
		t.Errorf("expected goal y (label Guitar), got %v", got)
	}
}

func TestSelectActive_NothingQualifies(t *testing.T) {
	goals := []models.Goal{
		{ID: "a", Status: "done"},
		{ID: "b", Status: "invalid"},
	}

	if got := SelectActive(goals, ""); got != nil {
		t.Errorf("expected nil, got %s", got.ID)
	}
	if got := SelectActive(nil, ""); got != nil {
		t.Errorf("expected nil for no goals, got %s", got.ID)
	}
}

func TestSelectActive_ReturnsIndependentCopy(t *testing.T) {
	goals := []models.Goal{
		{ID: "a", Status: "active", Schedule: &models.Schedule{DaysOfWeek: []int{1}, TimeSlots: []string{"09:00"}}},
	}

	got := SelectActive(goals, "")
	if got == nil {
		t.Fatal("expected an active goal, got nil")
	}

	got.Schedule.DaysOfWeek[0] = 5
	if goals[0].Schedule.DaysOfWeek[0] != 1 {
		t.Error("mutating the selection leaked into the input snapshot")
	}
}
