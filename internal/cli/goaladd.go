package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/julianstephens/stride/internal/models"
)

type GoalAddCmd struct {
	Title    string  `arg:"" help:"Goal title."`
	Days     string  `short:"w" help:"Comma-separated weekdays for the weekly schedule (mon,wed or 1,3)."`
	At       string  `short:"t" help:"Comma-separated time slots (HH:MM)."`
	Deadline string  `short:"D" help:"Deadline (YYYY-MM-DD)."`
	Order    *int    `short:"o" help:"Explicit priority order (lower = higher priority)."`
	WhyLink  float64 `help:"How strongly the goal connects to your 'why' (0-1)." default:"0"`
	Impact   float64 `help:"Expected impact (0-10)." default:"0"`
}

func (c *GoalAddCmd) Validate() error {
	if c.WhyLink < 0 || c.WhyLink > 1 {
		return fmt.Errorf("why-link must be between 0 and 1")
	}
	if c.Impact < 0 || c.Impact > 10 {
		return fmt.Errorf("impact must be between 0 and 10")
	}
	if (c.Days == "") != (c.At == "") {
		return fmt.Errorf("a schedule needs both --days and --at")
	}
	if c.Deadline != "" {
		if _, err := time.Parse("2006-01-02", c.Deadline); err != nil {
			return fmt.Errorf("invalid deadline: %s (expected YYYY-MM-DD)", c.Deadline)
		}
	}
	return nil
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var sched *models.Schedule
	if c.Days != "" {
		days, err := parseDays(c.Days)
		if err != nil {
			return err
		}
		slots, err := parseSlots(c.At)
		if err != nil {
			return err
		}
		sched = &models.Schedule{DaysOfWeek: days, TimeSlots: slots}
	}

	goal := models.Goal{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Status:    string(models.StatusQueued),
		Order:     c.Order,
		Schedule:  sched,
		Deadline:  c.Deadline,
		WhyLink:   c.WhyLink,
		Impact:    c.Impact,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := ctx.Store.AddGoal(goal); err != nil {
		return err
	}

	fmt.Printf("Added goal: %s (ID: %s)\n", c.Title, goal.ID)
	return nil
}
