package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/taskdeck/taskdeck/internal/app/taskstore"
	"github.com/taskdeck/taskdeck/internal/printer"
)

type TaskRmCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	taskID string
}

// NewTaskRmCommand returns the task rm command.
func NewTaskRmCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *TaskRmCommand {
	c := &TaskRmCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("rm", "Remove a task. Removing an unknown ID is a no-op.")
	c.Cmd.Arg("id", "ID of the task.").Required().StringVar(&c.taskID)

	return c
}

func (c TaskRmCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskRmCommand) Run(ctx context.Context) error {
	repo, closeStore, err := c.rootCmd.NewRepository(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, err := taskstore.NewService(taskstore.ServiceConfig{
		TaskRepository: repo,
		UserRepository: repo,
		Logger:         c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if err := svc.Delete(ctx, c.taskID); err != nil {
		return fmt.Errorf("could not delete task: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)

	return p.PrintMessage(fmt.Sprintf("Task removed: %s", c.taskID))
}
