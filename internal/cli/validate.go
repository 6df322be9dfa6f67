package cli

import (
	"fmt"

	"github.com/julianstephens/stride/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	defer ctx.Store.Close()

	state, err := ctx.Store.GetState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	fmt.Println("Validating goals...")
	result := validation.New().ValidateState(state)

	fmt.Println()
	fmt.Println(result.FormatReport())

	// Conflicts are informational, not a command failure
	return nil
}
