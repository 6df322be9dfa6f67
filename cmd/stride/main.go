package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/stride/internal/cli"
	"github.com/julianstephens/stride/internal/engine"
	"github.com/julianstephens/stride/internal/logger"
	"github.com/julianstephens/stride/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. A .json extension selects the JSON store, anything else SQLite." type:"path" default:"~/.config/stride/stride.db"`
	Verbose bool   `help:"Enable debug logging and engine diagnostics." short:"v"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize stride storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Now      cli.NowCmd      `cmd:"" help:"Show the goal you should be working on."`
	Next     cli.NextCmd     `cmd:"" help:"Show the active goal and the ranked queue."`
	Start    cli.StartCmd    `cmd:"" help:"Start working on a goal."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate cli.ValidateCmd `cmd:"" help:"Check stored goals for inconsistencies."`
	Debug    cli.DebugCmd    `cmd:"" help:"Debug commands for troubleshooting."`
	Goal     struct {
		Add     cli.GoalAddCmd     `cmd:"" help:"Add a new goal."`
		List    cli.GoalListCmd    `cmd:"" help:"List all goals."`
		Edit    cli.GoalEditCmd    `cmd:"" help:"Edit an existing goal."`
		Done    cli.GoalDoneCmd    `cmd:"" help:"Mark a goal as done."`
		Delete  cli.GoalDeleteCmd  `cmd:"" help:"Delete a goal."`
		Restore cli.GoalRestoreCmd `cmd:"" help:"Restore a deleted goal."`
	} `cmd:"" help:"Manage goals."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("stride"),
		kong.Description("Personal goal tracker / priority engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Verbose,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Store kind is chosen by file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	eng := engine.New()
	if CLI.Verbose {
		eng.Debug = os.Stderr
	}

	appCtx := &cli.Context{
		Store:  store,
		Engine: eng,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
