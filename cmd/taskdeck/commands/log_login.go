package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/taskdeck/taskdeck/internal/model"
)

type LogLoginCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	email  string
	role   string
	userID string
	output string
}

// NewLogLoginCommand returns the log login command.
func NewLogLoginCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *LogLoginCommand {
	c := &LogLoginCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("login", "Record a login and open a session.")
	c.Cmd.Flag("email", "Email of the user.").Required().StringVar(&c.email)
	c.Cmd.Flag("role", "Role of the user.").StringVar(&c.role)
	c.Cmd.Flag("user-id", "Stable ID of the user, generated when omitted.").StringVar(&c.userID)
	c.Cmd.Flag("output", "Output format (table, json).").Short('o').Default(OutputTable).EnumVar(&c.output, OutputTable, OutputJSON)

	return c
}

func (c LogLoginCommand) Name() string { return c.Cmd.FullCommand() }

func (c LogLoginCommand) Run(ctx context.Context) error {
	svc, closeStore, err := newActivityLogService(ctx, c.rootCmd)
	if err != nil {
		return err
	}
	defer closeStore()

	entry, err := svc.RecordLogin(ctx, model.User{
		ID:    c.userID,
		Email: c.email,
		Role:  c.role,
	})
	if err != nil {
		return fmt.Errorf("could not record login: %w", err)
	}

	p, err := c.rootCmd.NewPrinter(c.output)
	if err != nil {
		return err
	}

	// The confirmation is table-only so JSON output stays a single document.
	if c.output == OutputTable {
		if err := p.PrintMessage(fmt.Sprintf("Login recorded for %s", entry.Username)); err != nil {
			return err
		}
	}

	return p.PrintLogEntry(*entry)
}
