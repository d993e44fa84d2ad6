// Package taskstore implements the task store: creation, deletion and progress
// tracking of the current user's tasks, persisted as a whole collection after
// every mutation.
package taskstore

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/taskdeck/taskdeck/internal/log"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/storage"
)

// ServiceConfig is the configuration for the task store service.
type ServiceConfig struct {
	TaskRepository storage.TaskRepository
	UserRepository storage.UserRepository
	Logger         log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.TaskRepository == nil {
		return fmt.Errorf("task repository is required")
	}
	if c.UserRepository == nil {
		return fmt.Errorf("user repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.TaskStore"})
	return nil
}

// Service handles the task store business logic.
type Service struct {
	taskRepo storage.TaskRepository
	userRepo storage.UserRepository
	logger   log.Logger
}

// NewService creates a new task store service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		taskRepo: cfg.TaskRepository,
		userRepo: cfg.UserRepository,
		logger:   cfg.Logger,
	}, nil
}

// CreateOptions are the options for creating a task.
type CreateOptions struct {
	Config model.TaskConfig
	// AssignedTo is the display name of the authenticated user, attached to
	// the task at creation and immutable afterwards.
	AssignedTo string
}

// Create validates and stores a new task. Invalid input (empty title or
// description after trimming) aborts before anything is persisted.
func (s *Service) Create(ctx context.Context, opts CreateOptions) (*model.Task, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}

	task := model.Task{
		ID:          ulid.Make().String(),
		Title:       opts.Config.Title,
		Description: opts.Config.Description,
		Priority:    opts.Config.Priority,
		Deadline:    opts.Config.Deadline,
		Progress:    opts.Config.Progress,
		AssignedTo:  opts.AssignedTo,
	}

	tasks = append(tasks, task)
	if err := s.taskRepo.SaveTasks(ctx, tasks); err != nil {
		return nil, fmt.Errorf("could not save tasks: %w", err)
	}

	s.logger.Infof("Created task: %s (%s)", task.Title, task.ID)

	return &task, nil
}

// Delete removes a task by ID and persists the resulting collection. Deleting
// an absent task is a silent no-op, the operation is idempotent.
func (s *Service) Delete(ctx context.Context, taskID string) error {
	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("could not load tasks: %w", err)
	}

	kept := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}

	if err := s.taskRepo.SaveTasks(ctx, kept); err != nil {
		return fmt.Errorf("could not save tasks: %w", err)
	}

	s.logger.Infof("Deleted task: %s", taskID)

	return nil
}

// UpdateProgress replaces the progress of a task, clamped into [0, 100], and
// persists the collection. An absent task is a silent no-op.
func (s *Service) UpdateProgress(ctx context.Context, taskID string, progress int) error {
	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("could not load tasks: %w", err)
	}

	progress = model.ClampProgress(progress)
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Progress = progress
			break
		}
	}

	if err := s.taskRepo.SaveTasks(ctx, tasks); err != nil {
		return fmt.Errorf("could not save tasks: %w", err)
	}

	s.logger.Debugf("Updated progress of task %s to %d", taskID, progress)

	return nil
}

// List returns the stored task collection.
func (s *Service) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}

	return tasks, nil
}

// InitialState is the data loaded at startup.
type InitialState struct {
	Tasks []model.Task
	User  model.User
}

// LoadInitialState reads the persisted task collection and the logged-in user
// record. The user falls back to the unknown-user sentinel when absent.
func (s *Service) LoadInitialState(ctx context.Context) (*InitialState, error) {
	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}

	user, err := s.userRepo.GetLoggedInUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load logged-in user: %w", err)
	}

	return &InitialState{Tasks: tasks, User: user}, nil
}
