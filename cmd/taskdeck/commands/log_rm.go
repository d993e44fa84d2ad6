package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/taskdeck/taskdeck/internal/printer"
)

type LogRmCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	logID string
}

// NewLogRmCommand returns the log rm command.
func NewLogRmCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *LogRmCommand {
	c := &LogRmCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("rm", "Remove a log entry. Removing an unknown ID is a no-op.")
	c.Cmd.Arg("id", "ID of the log entry.").Required().StringVar(&c.logID)

	return c
}

func (c LogRmCommand) Name() string { return c.Cmd.FullCommand() }

func (c LogRmCommand) Run(ctx context.Context) error {
	svc, closeStore, err := newActivityLogService(ctx, c.rootCmd)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := svc.Delete(ctx, c.logID); err != nil {
		return fmt.Errorf("could not delete log entry: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)

	return p.PrintMessage(fmt.Sprintf("Log entry removed: %s", c.logID))
}
