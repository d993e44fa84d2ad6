package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/taskdeck/taskdeck/internal/app/taskstore"
)

type TaskListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	search string
	status string
	output string
}

// NewTaskListCommand returns the task list command.
func NewTaskListCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *TaskListCommand {
	c := &TaskListCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("list", "List tasks, optionally filtered.")
	c.Cmd.Flag("search", "Keep only tasks whose title contains this text.").StringVar(&c.search)
	c.Cmd.Flag("status", "Completion bucket.").Default(string(taskstore.StatusNone)).
		EnumVar(&c.status, string(taskstore.StatusNone), string(taskstore.StatusCompleted), string(taskstore.StatusIncomplete))
	c.Cmd.Flag("output", "Output format (table, json).").Short('o').Default(OutputTable).EnumVar(&c.output, OutputTable, OutputJSON)

	return c
}

func (c TaskListCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskListCommand) Run(ctx context.Context) error {
	status := taskstore.CompletionStatus(c.status)
	if err := status.Validate(); err != nil {
		return err
	}

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

	tasks, err := svc.List(ctx)
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}

	result := taskstore.Filter(tasks, c.search, status)

	p, err := c.rootCmd.NewPrinter(c.output)
	if err != nil {
		return err
	}

	// Mirror the filter indicator of the table view, JSON output stays clean.
	if result.IsFiltered && c.output == OutputTable {
		fmt.Fprintf(c.rootCmd.Stdout, "Showing %d of %d tasks\n", len(result.Tasks), len(tasks))
	}

	return p.PrintTaskList(result.Tasks)
}
