package cli

import (
	"fmt"
	"time"
)

type NextCmd struct {
	Top int `short:"n" help:"How many queued goals to suggest (default from settings)." default:"-1"`
}

func (c *NextCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	topN := c.Top
	if topN < 0 {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		topN = settings.DefaultTopN
	}

	state, err := ctx.Store.GetState()
	if err != nil {
		return err
	}

	result := ctx.Engine.Compute(state, time.Now(), topN)

	if result.ActiveGoal != nil {
		fmt.Printf("Now:  %s\n", result.ActiveGoal.DisplayLabel())
	} else {
		fmt.Println("Now:  nothing active")
	}

	if len(result.NextGoals) == 0 {
		fmt.Println("Next: no queued goals")
		return nil
	}

	fmt.Println("Next:")
	for i, entry := range result.NextGoals {
		fmt.Println(formatRankedGoal(i+1, entry))
	}

	if result.Meta.HasMultipleActive {
		fmt.Printf("\nNote: %d goals are marked active; showing one deterministically.\n", len(result.Meta.ActiveIDs))
	}

	return nil
}
