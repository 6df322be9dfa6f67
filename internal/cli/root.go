package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/stride/internal/backup"
	"github.com/julianstephens/stride/internal/engine"
	"github.com/julianstephens/stride/internal/logger"
	"github.com/julianstephens/stride/internal/models"
	"github.com/julianstephens/stride/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Never interrupt the user's workflow over a failed backup
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// parseDays parses a comma-separated weekday list into ISO numbering
// (1=Monday .. 7=Sunday). Both names ("mon", "monday") and ISO numbers
// are accepted.
func parseDays(s string) ([]int, error) {
	dayMap := map[string]int{
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
		"sun": 7, "sunday": 7,
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if day, ok := dayMap[part]; ok {
			days = append(days, day)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 1 || num > 7 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}

	return days, nil
}

// parseSlots parses a comma-separated list of "HH:MM" times of day. The
// engine tolerates malformed slots in stored data, but new input is
// rejected up front.
func parseSlots(s string) ([]string, error) {
	var slots []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if err := validateSlot(part); err != nil {
			return nil, err
		}
		slots = append(slots, part)
	}
	return slots, nil
}

func validateSlot(slot string) error {
	parts := strings.Split(slot, ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return fmt.Errorf("invalid time slot: %q (expected HH:MM)", slot)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid hour in %q", slot)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute in %q", slot)
	}
	return nil
}

func formatSchedule(sched *models.Schedule) string {
	if sched == nil || len(sched.DaysOfWeek) == 0 || len(sched.TimeSlots) == 0 {
		return "unscheduled"
	}

	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	var days []string
	for _, d := range sched.DaysOfWeek {
		if d >= 1 && d <= 7 {
			days = append(days, names[d-1])
		}
	}
	return fmt.Sprintf("%s at %s", strings.Join(days, ","), strings.Join(sched.TimeSlots, ","))
}

// formatRankedGoal renders one entry of the ranked queue for terminal
// output.
func formatRankedGoal(pos int, entry engine.RankedGoal) string {
	line := fmt.Sprintf("  %d. %s", pos, entry.Goal.DisplayLabel())

	var notes []string
	if entry.NextPlannedAt != nil {
		notes = append(notes, fmt.Sprintf("next %s", entry.NextPlannedAt.Format("Mon 15:04")))
	}
	if entry.DaysUntilDeadline != nil {
		switch days := *entry.DaysUntilDeadline; {
		case days < 0:
			notes = append(notes, fmt.Sprintf("%d days overdue", -days))
		case days == 0:
			notes = append(notes, "due today")
		default:
			notes = append(notes, fmt.Sprintf("due in %d days", days))
		}
	}
	if len(notes) > 0 {
		line += fmt.Sprintf(" (%s)", strings.Join(notes, ", "))
	}
	return line
}
