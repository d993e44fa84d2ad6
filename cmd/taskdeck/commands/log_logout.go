package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/printer"
)

type LogLogoutCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	email string
}

// NewLogLogoutCommand returns the log logout command.
func NewLogLogoutCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *LogLogoutCommand {
	c := &LogLogoutCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("logout", "Close the most recent open session of a user.")
	c.Cmd.Flag("email", "Email of the user.").Required().StringVar(&c.email)

	return c
}

func (c LogLogoutCommand) Name() string { return c.Cmd.FullCommand() }

func (c LogLogoutCommand) Run(ctx context.Context) error {
	svc, closeStore, err := newActivityLogService(ctx, c.rootCmd)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := svc.RecordLogout(ctx, model.User{Email: c.email}); err != nil {
		return fmt.Errorf("could not record logout: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)

	return p.PrintMessage(fmt.Sprintf("Logout recorded for %s", c.email))
}
