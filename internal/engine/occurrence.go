// Package engine computes goal priorities: active-goal resolution and a
// deterministic ranking of queued goals. Every function is pure and takes
// the reference instant as an argument, so results are reproducible under
// test. The engine never mutates the snapshot it is given.
package engine

import (
	"time"

	"github.com/julianstephens/stride/internal/constants"
	"github.com/julianstephens/stride/internal/models"
)

// NextOccurrence returns the earliest instant at or after now that matches
// some (weekday, time slot) pair of the schedule, or nil when the schedule
// is absent, empty, or yields nothing within the scan horizon.
//
// Each pair is resolved independently: day offsets 0..OccurrenceHorizonDays
// from the start of now's calendar day are scanned, and the first matching
// weekday whose slot instant is not in the past becomes that pair's
// candidate. The minimum over all candidates wins. A slot earlier today
// rolls over to the same weekday next week, which is why the horizon spans
// two full weeks.
func NextOccurrence(sched *models.Schedule, now time.Time) *time.Time {
	if sched == nil || len(sched.DaysOfWeek) == 0 || len(sched.TimeSlots) == 0 {
		return nil
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var best *time.Time
	for _, day := range sched.DaysOfWeek {
		weekday, ok := isoWeekday(day)
		if !ok {
			continue
		}
		for _, slot := range sched.TimeSlots {
			hour, minute, ok := parseTimeSlot(slot)
			if !ok {
				// Malformed slots are skipped, not an error.
				continue
			}
			for offset := 0; offset <= constants.OccurrenceHorizonDays; offset++ {
				date := dayStart.AddDate(0, 0, offset)
				if date.Weekday() != weekday {
					continue
				}
				candidate := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, now.Location())
				if candidate.Before(now) {
					// Slot already passed today; keep scanning for the
					// same weekday next week.
					continue
				}
				if best == nil || candidate.Before(*best) {
					best = &candidate
				}
				break
			}
		}
	}
	return best
}

// isoWeekday converts ISO numbering (1=Monday .. 7=Sunday) to time.Weekday.
func isoWeekday(day int) (time.Weekday, bool) {
	if day < 1 || day > 7 {
		return 0, false
	}
	return time.Weekday(day % 7), true
}

// parseTimeSlot parses "H:MM" or "HH:MM" with hour 0-23 and minute 0-59.
// Anything else reports ok=false.
func parseTimeSlot(slot string) (hour, minute int, ok bool) {
	colon := -1
	for i := 0; i < len(slot); i++ {
		if slot[i] == ':' {
			colon = i
			break
		}
	}
	if colon < 1 || colon > 2 || len(slot)-colon-1 != 2 {
		return 0, 0, false
	}
	hour, ok = parseDigits(slot[:colon])
	if !ok || hour > 23 {
		return 0, 0, false
	}
	minute, ok = parseDigits(slot[colon+1:])
	if !ok || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
