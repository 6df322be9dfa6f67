package cli

import (
	"fmt"

	"github.com/julianstephens/stride/internal/models"
)

type StartCmd struct {
	ID string `arg:"" help:"ID of the goal to start working on."`
}

func (c *StartCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	goal, err := ctx.Store.GetGoal(c.ID)
	if err != nil {
		return err
	}
	if models.NormalizeStatus(goal.Status).Terminal() {
		return fmt.Errorf("cannot start a %s goal: %s", models.NormalizeStatus(goal.Status), goal.DisplayLabel())
	}

	goal.Status = string(models.StatusActive)
	if err := ctx.Store.UpdateGoal(goal); err != nil {
		return err
	}
	if err := ctx.Store.SetActiveGoalID(c.ID); err != nil {
		return err
	}

	fmt.Printf("Started: %s\n", goal.DisplayLabel())
	return nil
}
