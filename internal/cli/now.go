package cli

import (
	"fmt"
	"time"
)

type NowCmd struct{}

func (c *NowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	state, err := ctx.Store.GetState()
	if err != nil {
		return err
	}

	result := ctx.Engine.Compute(state, time.Now(), 0)

	if result.ActiveGoal == nil {
		fmt.Println("No active goal. Pick one with 'stride next'.")
		return nil
	}

	fmt.Printf("Current goal: %s\n", result.ActiveGoal.DisplayLabel())
	if result.ActiveGoal.Deadline != "" {
		fmt.Printf("Deadline:     %s\n", result.ActiveGoal.Deadline)
	}
	if sched := formatSchedule(result.ActiveGoal.Schedule); sched != "unscheduled" {
		fmt.Printf("Schedule:     %s\n", sched)
	}

	return nil
}
