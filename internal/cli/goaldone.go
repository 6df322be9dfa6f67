package cli

import (
	"fmt"

	"github.com/julianstephens/stride/internal/models"
)

type GoalDoneCmd struct {
	ID string `arg:"" help:"ID of the goal to mark done."`
}

func (c *GoalDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	goal, err := ctx.Store.GetGoal(c.ID)
	if err != nil {
		return err
	}

	goal.Status = string(models.StatusDone)
	if err := ctx.Store.UpdateGoal(goal); err != nil {
		return err
	}

	// A finished goal should no longer be pinned as the current one.
	state, err := ctx.Store.GetState()
	if err != nil {
		return err
	}
	if state.UI.ActiveGoalID == c.ID {
		if err := ctx.Store.SetActiveGoalID(""); err != nil {
			return err
		}
	}

	fmt.Printf("Done: %s\n", goal.DisplayLabel())
	return nil
}
