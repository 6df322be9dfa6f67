package cli

import (
	"encoding/json"
	"fmt"
	"time"
)

type DebugCmd struct {
	DBPath         *DebugDBPathCmd         `cmd:"" help:"Show database path."`
	DumpGoal       *DebugDumpGoalCmd       `cmd:"" help:"Dump goal data as JSON."`
	DumpState      *DebugDumpStateCmd      `cmd:"" help:"Dump the full state snapshot as JSON."`
	DumpPriorities *DebugDumpPrioritiesCmd `cmd:"" help:"Dump the computed priorities result as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	// Machine-readable output
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpGoalCmd struct {
	ID string `arg:"" help:"ID of the goal to dump."`
}

func (cmd *DebugDumpGoalCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	goal, err := ctx.Store.GetGoal(cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to get goal: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(goal, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal goal: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpStateCmd struct{}

func (cmd *DebugDumpStateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	state, err := ctx.Store.GetState()
	if err != nil {
		return fmt.Errorf("failed to get state: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpPrioritiesCmd struct {
	Top int    `short:"n" help:"How many next goals to include." default:"3"`
	Now string `help:"Reference instant (RFC3339); defaults to the current time."`
}

func (cmd *DebugDumpPrioritiesCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	now := time.Now()
	if cmd.Now != "" {
		parsed, err := time.Parse(time.RFC3339, cmd.Now)
		if err != nil {
			return fmt.Errorf("invalid --now value: %w", err)
		}
		now = parsed
	}

	state, err := ctx.Store.GetState()
	if err != nil {
		return fmt.Errorf("failed to get state: %w", err)
	}

	result := ctx.Engine.Compute(state, now, cmd.Top)

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
