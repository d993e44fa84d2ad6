package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/taskdeck/taskdeck/internal/app/taskstore"
	"github.com/taskdeck/taskdeck/internal/printer"
)

type TaskProgressCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	taskID   string
	progress int
}

// NewTaskProgressCommand returns the task progress command.
func NewTaskProgressCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *TaskProgressCommand {
	c := &TaskProgressCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("progress", "Update the progress of a task. Values are clamped to 0-100.")
	c.Cmd.Arg("id", "ID of the task.").Required().StringVar(&c.taskID)
	c.Cmd.Arg("value", "New progress value.").Required().IntVar(&c.progress)

	return c
}

func (c TaskProgressCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskProgressCommand) Run(ctx context.Context) error {
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

	if err := svc.UpdateProgress(ctx, c.taskID, c.progress); err != nil {
		return fmt.Errorf("could not update progress: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)

	return p.PrintMessage(fmt.Sprintf("Progress updated: %s", c.taskID))
}
