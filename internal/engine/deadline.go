package engine

import (
	"time"

	"github.com/julianstephens/stride/internal/constants"
)

const deadlineLayout = "2006-01-02"

// DaysUntilDeadline returns the whole number of calendar days remaining
// until the goal's deadline, or nil when the deadline is missing or not a
// strict YYYY-MM-DD date. The deadline is interpreted as local end of day,
// so a deadline of today yields 0, tomorrow 1, and yesterday -1.
func DaysUntilDeadline(deadline string, now time.Time) *int {
	if deadline == "" {
		return nil
	}
	day, err := time.ParseInLocation(deadlineLayout, deadline, now.Location())
	if err != nil {
		return nil
	}
	endOfDay := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), now.Location())

	ms := endOfDay.Sub(now).Milliseconds()
	const msPerDay = 86_400_000
	days := int(ms / msPerDay)
	if ms < 0 && ms%msPerDay != 0 {
		// Integer division truncates toward zero; overdue deadlines need
		// floor semantics so "yesterday" counts as -1, not 0.
		days--
	}
	return &days
}

// deadlineUrgency converts days-until-deadline into the bounded urgency
// term used by the scorer. Goals without a deadline are neutral (0);
// otherwise urgency grows as the deadline approaches and saturates at
// ±UrgencyClampDays.
func deadlineUrgency(daysUntil *int) float64 {
	if daysUntil == nil {
		return 0
	}
	urgency := float64(constants.UrgencyClampDays - *daysUntil)
	return clamp(urgency, -constants.UrgencyClampDays, constants.UrgencyClampDays)
}
