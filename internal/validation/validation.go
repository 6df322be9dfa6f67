package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/stride/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateGoalID    ConflictType = "duplicate_goal_id"
	ConflictDuplicateTitle     ConflictType = "duplicate_title"
	ConflictUnknownStatus      ConflictType = "unknown_status"
	ConflictMalformedDeadline  ConflictType = "malformed_deadline"
	ConflictMalformedTimeSlot  ConflictType = "malformed_time_slot"
	ConflictInvalidWeekday     ConflictType = "invalid_weekday"
	ConflictIncompleteSchedule ConflictType = "incomplete_schedule"
	ConflictDanglingActiveHint ConflictType = "dangling_active_hint"
	ConflictMultipleActive     ConflictType = "multiple_active"
)

// Conflict represents a detected inconsistency in stored goal data. The
// priorities engine tolerates all of these (it degrades to documented
// defaults); the lint exists so users can find out why a goal is not
// ranking the way they expect.
type Conflict struct {
	Type        ConflictType
	Description string
	GoalIDs     []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks stored goal data for inconsistencies
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateState checks the full snapshot: every goal plus the UI hint.
func (v *Validator) ValidateState(state models.State) ValidationResult {
	result := v.ValidateGoals(state.Goals)

	if state.UI.ActiveGoalID != "" {
		hintOK := false
		for _, g := range state.Goals {
			if g.ID == state.UI.ActiveGoalID {
				hintOK = !models.NormalizeStatus(g.Status).Terminal()
				break
			}
		}
		if !hintOK {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictDanglingActiveHint,
				Description: fmt.Sprintf("active-goal hint %q does not reference a live goal",
					state.UI.ActiveGoalID),
				GoalIDs: []string{state.UI.ActiveGoalID},
			})
		}
	}

	return result
}

// ValidateGoals checks goals for conflicts
func (v *Validator) ValidateGoals(goals []models.Goal) ValidationResult {
	var conflicts []Conflict

	seenIDs := make(map[string]bool)
	titleOwners := make(map[string]string)
	var activeIDs []string

	for _, g := range goals {
		if g.DeletedAt != nil {
			continue
		}

		if seenIDs[g.ID] {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictDuplicateGoalID,
				Description: fmt.Sprintf("duplicate goal ID: %s", g.ID),
				GoalIDs:     []string{g.ID},
			})
		}
		seenIDs[g.ID] = true

		label := g.DisplayLabel()
		if label != "" && label != g.ID {
			if owner, ok := titleOwners[label]; ok {
				conflicts = append(conflicts, Conflict{
					Type:        ConflictDuplicateTitle,
					Description: fmt.Sprintf("goals %s and %s share the label %q", owner, g.ID, label),
					GoalIDs:     []string{owner, g.ID},
				})
			} else {
				titleOwners[label] = g.ID
			}
		}

		conflicts = append(conflicts, v.validateGoal(g)...)

		if models.NormalizeStatus(g.Status) == models.StatusActive {
			activeIDs = append(activeIDs, g.ID)
		}
	}

	if len(activeIDs) > 1 {
		conflicts = append(conflicts, Conflict{
			Type: ConflictMultipleActive,
			Description: fmt.Sprintf("%d goals are marked active: %s",
				len(activeIDs), strings.Join(activeIDs, ", ")),
			GoalIDs: activeIDs,
		})
	}

	return ValidationResult{Conflicts: conflicts}
}

func (v *Validator) validateGoal(g models.Goal) []Conflict {
	var conflicts []Conflict

	if g.Status != "" && string(models.NormalizeStatus(g.Status)) != g.Status && g.Status != "abandoned" {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictUnknownStatus,
			Description: fmt.Sprintf("goal %s has unknown status %q (treated as queued)", g.ID, g.Status),
			GoalIDs:     []string{g.ID},
		})
	}

	if g.Deadline != "" {
		if _, err := time.Parse("2006-01-02", g.Deadline); err != nil {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictMalformedDeadline,
				Description: fmt.Sprintf("goal %s has malformed deadline %q (ignored by ranking)", g.ID, g.Deadline),
				GoalIDs:     []string{g.ID},
			})
		}
	}

	if g.Schedule != nil {
		if (len(g.Schedule.DaysOfWeek) == 0) != (len(g.Schedule.TimeSlots) == 0) {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictIncompleteSchedule,
				Description: fmt.Sprintf("goal %s has a schedule with days or slots missing (never occurs)", g.ID),
				GoalIDs:     []string{g.ID},
			})
		}
		for _, day := range g.Schedule.DaysOfWeek {
			if day < 1 || day > 7 {
				conflicts = append(conflicts, Conflict{
					Type:        ConflictInvalidWeekday,
					Description: fmt.Sprintf("goal %s has weekday %d outside 1-7 (skipped)", g.ID, day),
					GoalIDs:     []string{g.ID},
				})
			}
		}
		for _, slot := range g.Schedule.TimeSlots {
			if !validSlot(slot) {
				conflicts = append(conflicts, Conflict{
					Type:        ConflictMalformedTimeSlot,
					Description: fmt.Sprintf("goal %s has malformed time slot %q (skipped)", g.ID, slot),
					GoalIDs:     []string{g.ID},
				})
			}
		}
	}

	return conflicts
}

func validSlot(slot string) bool {
	parts := strings.Split(slot, ":")
	if len(parts) != 2 || len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return false
	}
	return true
}
