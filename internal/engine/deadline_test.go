package engine

import (
	"testing"
	"time"
)

func TestDaysUntilDeadline_Tomorrow(t *testing.T) {
	now := time.Date(2025, 1, 9, 10, 0, 0, 0, time.Local)

	got := DaysUntilDeadline("2025-01-10", now)
	if got == nil {
		t.Fatal("expected a day count, got nil")
	}
	if *got != 1 {
		t.Errorf("expected 1 day, got %d", *got)
	}
}

func TestDaysUntilDeadline_Today(t *testing.T) {
	now := time.Date(2025, 1, 9, 10, 0, 0, 0, time.Local)

	got := DaysUntilDeadline("2025-01-09", now)
	if got == nil {
		t.Fatal("expected a day count, got nil")
	}
	if *got != 0 {
		t.Errorf("deadline today should be 0 days, got %d", *got)
	}
}

func TestDaysUntilDeadline_Overdue(t *testing.T) {
	now := time.Date(2025, 1, 9, 10, 0, 0, 0, time.Local)

	got := DaysUntilDeadline("2025-01-08", now)
	if got == nil {
		t.Fatal("expected a day count, got nil")
	}
	if *got != -1 {
		t.Errorf("deadline yesterday should be -1 days, got %d", *got)
	}
}

func TestDaysUntilDeadline_Malformed(t *testing.T) {
	now := time.Date(2025, 1, 9, 10, 0, 0, 0, time.Local)

	for _, deadline := range []string{"", "not-a-date", "2025-1-10", "2025-01-32", "2025/01/10", "2025-01-10T00:00:00"} {
		if got := DaysUntilDeadline(deadline, now); got != nil {
			t.Errorf("DaysUntilDeadline(%q) = %d, expected nil", deadline, *got)
		}
	}
}

func TestDeadlineUrgency(t *testing.T) {
	intp := func(n int) *int { return &n }

	cases := []struct {
		name      string
		daysUntil *int
		want      float64
	}{
		{"no deadline is neutral", nil, 0},
		{"due today", intp(0), 60},
		{"due in a week", intp(7), 53},
		{"overdue saturates", intp(-200), 60},
		{"far future saturates", intp(200), -60},
	}

	for _, tc := range cases {
		if got := deadlineUrgency(tc.daysUntil); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
