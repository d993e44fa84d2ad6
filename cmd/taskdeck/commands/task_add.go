package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/taskdeck/taskdeck/internal/app/taskstore"
	"github.com/taskdeck/taskdeck/internal/model"
)

type TaskAddCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	title       string
	description string
	priority    string
	deadline    string
	progress    int
	output      string
}

// NewTaskAddCommand returns the task add command.
func NewTaskAddCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *TaskAddCommand {
	c := &TaskAddCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("add", "Create a new task assigned to the logged-in user.")
	c.Cmd.Flag("title", "Title of the task.").Short('t').Required().StringVar(&c.title)
	c.Cmd.Flag("description", "Description of the task.").Short('d').Required().StringVar(&c.description)
	c.Cmd.Flag("priority", "Priority of the task.").Default("medium").EnumVar(&c.priority, "high", "medium", "low")
	c.Cmd.Flag("deadline", "Deadline date (YYYY-MM-DD).").StringVar(&c.deadline)
	c.Cmd.Flag("progress", "Initial progress (0-100).").Default("0").IntVar(&c.progress)
	c.Cmd.Flag("output", "Output format (table, json).").Short('o').Default(OutputTable).EnumVar(&c.output, OutputTable, OutputJSON)

	return c
}

func (c TaskAddCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskAddCommand) Run(ctx context.Context) error {
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

	cfg := model.TaskConfig{
		Title:       c.title,
		Description: c.description,
		Priority:    priorityFromFlag(c.priority),
		Progress:    c.progress,
	}
	if c.deadline != "" {
		d, err := time.Parse("2006-01-02", c.deadline)
		if err != nil {
			return fmt.Errorf("invalid deadline date: %w", err)
		}
		cfg.Deadline = &d
	}

	// The task is assigned to whoever is recorded as logged in.
	user, err := repo.GetLoggedInUser(ctx)
	if err != nil {
		return fmt.Errorf("could not load logged-in user: %w", err)
	}

	task, err := svc.Create(ctx, taskstore.CreateOptions{
		Config:     cfg,
		AssignedTo: user.Name,
	})
	if err != nil {
		return fmt.Errorf("could not create task: %w", err)
	}

	p, err := c.rootCmd.NewPrinter(c.output)
	if err != nil {
		return err
	}

	// The confirmation is table-only so JSON output stays a single document.
	if c.output == OutputTable {
		if err := p.PrintMessage("Task added successfully!"); err != nil {
			return err
		}
	}

	return p.PrintTask(*task)
}

func priorityFromFlag(p string) model.Priority {
	switch p {
	case "high":
		return model.PriorityHigh
	case "low":
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}
