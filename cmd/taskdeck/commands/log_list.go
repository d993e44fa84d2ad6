package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/taskdeck/taskdeck/internal/app/activitylog"
)

type LogListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	role   string
	search string
	action string
	output string
}

// NewLogListCommand returns the log list command.
func NewLogListCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *LogListCommand {
	c := &LogListCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("list", "List log entries, optionally filtered.")
	c.Cmd.Flag("role", "Keep only entries with this role ('all' keeps everything).").StringVar(&c.role)
	c.Cmd.Flag("search", "Keep only entries whose username, user ID or IP contains this text.").StringVar(&c.search)
	c.Cmd.Flag("action", "Keep only entries with this action.").StringVar(&c.action)
	c.Cmd.Flag("output", "Output format (table, json).").Short('o').Default(OutputTable).EnumVar(&c.output, OutputTable, OutputJSON)

	return c
}

func (c LogListCommand) Name() string { return c.Cmd.FullCommand() }

func (c LogListCommand) Run(ctx context.Context) error {
	svc, closeStore, err := newActivityLogService(ctx, c.rootCmd)
	if err != nil {
		return err
	}
	defer closeStore()

	entries, err := svc.Query(ctx, activitylog.QueryFilters{
		Role:   c.role,
		Search: c.search,
		Action: c.action,
	})
	if err != nil {
		return fmt.Errorf("could not query logs: %w", err)
	}

	p, err := c.rootCmd.NewPrinter(c.output)
	if err != nil {
		return err
	}

	return p.PrintLogList(entries)
}
