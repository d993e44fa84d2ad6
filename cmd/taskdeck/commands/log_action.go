package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/printer"
)

type LogActionCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	email   string
	role    string
	userID  string
	action  string
	details []string
}

// NewLogActionCommand returns the log action command.
func NewLogActionCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *LogActionCommand {
	c := &LogActionCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("action", "Record an arbitrary user action.")
	c.Cmd.Flag("email", "Email of the user.").Required().StringVar(&c.email)
	c.Cmd.Flag("role", "Role of the user.").StringVar(&c.role)
	c.Cmd.Flag("user-id", "Stable ID of the user, generated when omitted.").StringVar(&c.userID)
	c.Cmd.Flag("detail", "Detail of the action as key=value, repeatable.").StringsVar(&c.details)
	c.Cmd.Arg("name", "Name of the action.").Required().StringVar(&c.action)

	return c
}

func (c LogActionCommand) Name() string { return c.Cmd.FullCommand() }

func (c LogActionCommand) Run(ctx context.Context) error {
	details := map[string]any{}
	for _, d := range c.details {
		k, v, ok := strings.Cut(d, "=")
		if !ok {
			return fmt.Errorf("invalid detail %q, expected key=value", d)
		}
		details[k] = v
	}

	svc, closeStore, err := newActivityLogService(ctx, c.rootCmd)
	if err != nil {
		return err
	}
	defer closeStore()

	user := model.User{ID: c.userID, Email: c.email, Role: c.role}
	if err := svc.RecordAction(ctx, user, c.action, details); err != nil {
		return fmt.Errorf("could not record action: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)

	return p.PrintMessage(fmt.Sprintf("Action %q recorded for %s", c.action, c.email))
}
