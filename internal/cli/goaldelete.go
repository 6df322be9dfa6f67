package cli

import "fmt"

type GoalDeleteCmd struct {
	ID string `arg:"" help:"ID of the goal to delete."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	goal, err := ctx.Store.GetGoal(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteGoal(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted goal: %s (restore with 'stride goal restore %s')\n", goal.DisplayLabel(), c.ID)
	return nil
}

type GoalRestoreCmd struct {
	ID string `arg:"" help:"ID of the goal to restore."`
}

func (c *GoalRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.RestoreGoal(c.ID); err != nil {
		return err
	}

	fmt.Printf("Restored goal: %s\n", c.ID)
	return nil
}
