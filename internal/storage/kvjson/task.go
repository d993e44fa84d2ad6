package kvjson

import (
	"context"
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/model"
)

const deadlineFormat = "2006-01-02"

// storedTask is the persisted JSON shape of a task. Field names are part of
// the stored format.
type storedTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline"`
	Progress    int    `json:"progress"`
	AssignedTo  string `json:"assignedTo"`
}

func (t storedTask) toModel() model.Task {
	task := model.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    model.Priority(t.Priority),
		Progress:    model.ClampProgress(t.Progress),
		AssignedTo:  t.AssignedTo,
	}

	if t.Deadline != "" {
		if d, err := time.Parse(deadlineFormat, t.Deadline); err == nil {
			task.Deadline = &d
		}
	}

	return task
}

func taskToStored(t model.Task) storedTask {
	st := storedTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Progress:    t.Progress,
		AssignedTo:  t.AssignedTo,
	}

	if t.Deadline != nil {
		st.Deadline = t.Deadline.Format(deadlineFormat)
	}

	return st
}

// ListTasks returns the stored task collection.
func (r *Repository) ListTasks(ctx context.Context) ([]model.Task, error) {
	stored, err := getCollection[storedTask](ctx, r, keyTasks)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(stored))
	for _, st := range stored {
		tasks = append(tasks, st.toModel())
	}

	return tasks, nil
}

// SaveTasks overwrites the stored task collection.
func (r *Repository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	stored := make([]storedTask, 0, len(tasks))
	for _, t := range tasks {
		stored = append(stored, taskToStored(t))
	}

	if err := r.setCollection(ctx, keyTasks, stored); err != nil {
		return fmt.Errorf("could not save tasks: %w", err)
	}

	r.logger.Debugf("Saved %d tasks", len(tasks))

	return nil
}
