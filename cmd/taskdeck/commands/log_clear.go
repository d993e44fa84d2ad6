package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/taskdeck/taskdeck/internal/printer"
)

type LogClearCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	yes bool
}

// NewLogClearCommand returns the log clear command.
func NewLogClearCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *LogClearCommand {
	c := &LogClearCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("clear", "Remove all log entries.")
	c.Cmd.Flag("yes", "Confirm removal of all log entries.").BoolVar(&c.yes)

	return c
}

func (c LogClearCommand) Name() string { return c.Cmd.FullCommand() }

func (c LogClearCommand) Run(ctx context.Context) error {
	if !c.yes {
		return fmt.Errorf("this removes every log entry, rerun with --yes to confirm")
	}

	svc, closeStore, err := newActivityLogService(ctx, c.rootCmd)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := svc.ClearAll(ctx); err != nil {
		return fmt.Errorf("could not clear logs: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)

	return p.PrintMessage("All log entries removed")
}
