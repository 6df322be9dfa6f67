package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/stride/internal/models"
)

var dayNames = map[string]int{
	"mon": 1, "monday": 1,
	"tue": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
	"sun": 7, "sunday": 7,
}

// parseScheduleInput turns the free-form day and slot fields of the add
// form into a Schedule. Both parts are required for the schedule to
// ever produce an occurrence.
func parseScheduleInput(daysInput, slotsInput string) (*models.Schedule, error) {
	if daysInput == "" || slotsInput == "" {
		return nil, fmt.Errorf("schedule needs both days and time slots")
	}

	var days []int
	for _, part := range strings.Split(daysInput, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if day, ok := dayNames[part]; ok {
			days = append(days, day)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 1 || num > 7 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}

	var slots []string
	for _, part := range strings.Split(slotsInput, ",") {
		part = strings.TrimSpace(part)
		if err := checkSlot(part); err != nil {
			return nil, err
		}
		slots = append(slots, part)
	}

	return &models.Schedule{DaysOfWeek: days, TimeSlots: slots}, nil
}

func checkSlot(slot string) error {
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
