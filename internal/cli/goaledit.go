package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/stride/internal/models"
)

type GoalEditCmd struct {
	ID       string   `arg:"" help:"ID of the goal to edit."`
	Title    *string  `help:"New title."`
	Status   *string  `help:"New status (queued|active|done|invalid)."`
	Days     *string  `short:"w" help:"New schedule weekdays; empty string clears the schedule."`
	At       *string  `short:"t" help:"New schedule time slots (HH:MM)."`
	Deadline *string  `short:"D" help:"New deadline (YYYY-MM-DD); empty string clears it."`
	Order    *int     `short:"o" help:"New priority order."`
	WhyLink  *float64 `help:"New why-link value (0-1)."`
	Impact   *float64 `help:"New impact value (0-10)."`
}

func (c *GoalEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	goal, err := ctx.Store.GetGoal(c.ID)
	if err != nil {
		return err
	}

	if c.Title != nil {
		goal.Title = *c.Title
	}
	if c.Status != nil {
		goal.Status = string(models.NormalizeStatus(*c.Status))
	}
	if c.Deadline != nil {
		if *c.Deadline != "" {
			if _, err := time.Parse("2006-01-02", *c.Deadline); err != nil {
				return fmt.Errorf("invalid deadline: %s (expected YYYY-MM-DD)", *c.Deadline)
			}
		}
		goal.Deadline = *c.Deadline
	}
	if c.Order != nil {
		goal.Order = c.Order
	}
	if c.WhyLink != nil {
		goal.WhyLink = *c.WhyLink
	}
	if c.Impact != nil {
		goal.Impact = *c.Impact
	}

	if c.Days != nil || c.At != nil {
		if c.Days != nil && *c.Days == "" {
			goal.Schedule = nil
		} else {
			sched := models.Schedule{}
			if goal.Schedule != nil {
				sched = *goal.Schedule
			}
			if c.Days != nil {
				days, err := parseDays(*c.Days)
				if err != nil {
					return err
				}
				sched.DaysOfWeek = days
			}
			if c.At != nil {
				slots, err := parseSlots(*c.At)
				if err != nil {
					return err
				}
				sched.TimeSlots = slots
			}
			goal.Schedule = &sched
		}
	}

	if err := ctx.Store.UpdateGoal(goal); err != nil {
		return err
	}

	fmt.Printf("Updated goal: %s\n", goal.DisplayLabel())
	return nil
}
