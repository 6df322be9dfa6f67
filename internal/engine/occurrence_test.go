package engine

import (
	"testing"
	"time"

	"github.com/julianstephens/stride/internal/models"
)

// mondayMorning returns 2025-12-29 08:00 local time. Dec 29 2025 is a Monday.
func mondayMorning() time.Time {
	return time.Date(2025, 12, 29, 8, 0, 0, 0, time.Local)
}

func TestNextOccurrence_SameDayUpcomingSlot(t *testing.T) {
	sched := &models.Schedule{DaysOfWeek: []int{1}, TimeSlots: []string{"09:00"}}

	got := NextOccurrence(sched, mondayMorning())
	if got == nil {
		t.Fatal("expected an occurrence, got nil")
	}

	want := time.Date(2025, 12, 29, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNextOccurrence_BoundaryIsInclusive(t *testing.T) {
	sched := &models.Schedule{DaysOfWeek: []int{1}, TimeSlots: []string{"09:00"}}
	now := time.Date(2025, 12, 29, 9, 0, 0, 0, time.Local)

	got := NextOccurrence(sched, now)
	if got == nil {
		t.Fatal("expected an occurrence, got nil")
	}
	if !got.Equal(now) {
		t.Errorf("expected the boundary instant %v, got %v", now, got)
	}
}

func TestNextOccurrence_PassedSlotRollsToNextWeek(t *testing.T) {
	sched := &models.Schedule{DaysOfWeek: []int{1}, TimeSlots: []string{"09:00"}}
	now := time.Date(2025, 12, 29, 10, 0, 0, 0, time.Local) // Monday, after the slot

	got := NextOccurrence(sched, now)
	if got == nil {
		t.Fatal("expected an occurrence, got nil")
	}

	want := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local) // next Monday
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNextOccurrence_EmptyScheduleReturnsNil(t *testing.T) {
	now := mondayMorning()

	if got := NextOccurrence(nil, now); got != nil {
		t.Errorf("nil schedule: expected nil, got %v", got)
	}
	if got := NextOccurrence(&models.Schedule{TimeSlots: []string{"09:00"}}, now); got != nil {
		t.Errorf("no days: expected nil, got %v", got)
	}
	if got := NextOccurrence(&models.Schedule{DaysOfWeek: []int{1}}, now); got != nil {
		t.Errorf("no slots: expected nil, got %v", got)
	}
}

func TestNextOccurrence_InvalidSlotsAreSkipped(t *testing.T) {
	sched := &models.Schedule{
		DaysOfWeek: []int{1},
		TimeSlots:  []string{"garbage", "25:00", "9:5", "12:60", "18:30"},
	}

	got := NextOccurrence(sched, mondayMorning())
	if got == nil {
		t.Fatal("expected the one valid slot to resolve, got nil")
	}

	want := time.Date(2025, 12, 29, 18, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNextOccurrence_SingleDigitHour(t *testing.T) {
	sched := &models.Schedule{DaysOfWeek: []int{1}, TimeSlots: []string{"9:05"}}

	got := NextOccurrence(sched, mondayMorning())
	if got == nil {
		t.Fatal("expected an occurrence, got nil")
	}

	want := time.Date(2025, 12, 29, 9, 5, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNextOccurrence_EarliestPairWins(t *testing.T) {
	// Wednesday (3) 07:00 is sooner than Monday's remaining slot next week.
	sched := &models.Schedule{
		DaysOfWeek: []int{1, 3},
		TimeSlots:  []string{"07:00"},
	}
	now := time.Date(2025, 12, 29, 10, 0, 0, 0, time.Local) // Monday, 07:00 passed

	got := NextOccurrence(sched, now)
	if got == nil {
		t.Fatal("expected an occurrence, got nil")
	}

	want := time.Date(2025, 12, 31, 7, 0, 0, 0, time.Local) // Wednesday
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNextOccurrence_SundayIsISOSeven(t *testing.T) {
	sched := &models.Schedule{DaysOfWeek: []int{7}, TimeSlots: []string{"10:00"}}

	got := NextOccurrence(sched, mondayMorning())
	if got == nil {
		t.Fatal("expected an occurrence, got nil")
	}

	want := time.Date(2026, 1, 4, 10, 0, 0, 0, time.Local) // the following Sunday
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNextOccurrence_OutOfRangeDaysAreSkipped(t *testing.T) {
	sched := &models.Schedule{DaysOfWeek: []int{0, 8, -1}, TimeSlots: []string{"09:00"}}

	if got := NextOccurrence(sched, mondayMorning()); got != nil {
		t.Errorf("expected nil for out-of-range weekdays, got %v", got)
	}
}

func TestParseTimeSlot(t *testing.T) {
	cases := []struct {
		slot   string
		hour   int
		minute int
		ok     bool
	}{
		{"09:00", 9, 0, true},
		{"9:05", 9, 5, true},
		{"00:00", 0, 0, true},
		{"23:59", 23, 59, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"9:5", 0, 0, false},
		{"009:00", 0, 0, false},
		{":30", 0, 0, false},
		{"12", 0, 0, false},
		{"", 0, 0, false},
		{"ab:cd", 0, 0, false},
	}

	for _, tc := range cases {
		hour, minute, ok := parseTimeSlot(tc.slot)
		if ok != tc.ok || hour != tc.hour || minute != tc.minute {
			t.Errorf("parseTimeSlot(%q) = (%d, %d, %v), expected (%d, %d, %v)",
				tc.slot, hour, minute, ok, tc.hour, tc.minute, tc.ok)
		}
	}
}
