package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/taskdeck/taskdeck/internal/printer"
)

type LogSessionCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewLogSessionCommand returns the log session command.
func NewLogSessionCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *LogSessionCommand {
	c := &LogSessionCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("session", "Show the current session pointer.")

	return c
}

func (c LogSessionCommand) Name() string { return c.Cmd.FullCommand() }

func (c LogSessionCommand) Run(ctx context.Context) error {
	svc, closeStore, err := newActivityLogService(ctx, c.rootCmd)
	if err != nil {
		return err
	}
	defer closeStore()

	sessionID, err := svc.CurrentSession(ctx)
	if err != nil {
		return fmt.Errorf("could not read current session: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if sessionID == "" {
		return p.PrintMessage("No open session")
	}

	return p.PrintMessage(sessionID)
}
