package cli

import (
	"fmt"

	"github.com/julianstephens/stride/internal/models"
)

type GoalListCmd struct {
	Status string `help:"Show only goals with this status (queued|active|done|invalid)."`
}

func (c *GoalListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	goals, err := ctx.Store.GetAllGoals()
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		fmt.Println("No goals found")
		return nil
	}

	fmt.Println("Goals:")
	for _, goal := range goals {
		status := models.NormalizeStatus(goal.Status)
		if c.Status != "" && string(status) != c.Status {
			continue
		}

		fmt.Printf("  [%s] %s - %s\n", status, goal.DisplayLabel(), formatSchedule(goal.Schedule))
		if goal.Deadline != "" {
			fmt.Printf("      Deadline: %s\n", goal.Deadline)
		}
		if goal.Order != nil {
			fmt.Printf("      Order: %d\n", *goal.Order)
		}
		fmt.Printf("      ID: %s\n", goal.ID)
	}

	return nil
}
