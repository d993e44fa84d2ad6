package model

import (
	"fmt"
	"strings"
	"time"
)

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Task represents a user-owned unit of work.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Deadline    *time.Time
	Progress    int
	AssignedTo  string
}

// TaskConfig is the user provided data for creating a task.
// AssignedTo is set by the service from the authenticated user, not here.
type TaskConfig struct {
	Title       string
	Description string
	Priority    Priority
	Deadline    *time.Time
	Progress    int
}

// Validate validates the task creation data.
func (c *TaskConfig) Validate() error {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)

	if c.Title == "" {
		return fmt.Errorf("title is required: %w", ErrNotValid)
	}
	if c.Description == "" {
		return fmt.Errorf("description is required: %w", ErrNotValid)
	}

	switch c.Priority {
	case "":
		c.Priority = PriorityMedium
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("unknown priority %q: %w", c.Priority, ErrNotValid)
	}

	c.Progress = ClampProgress(c.Progress)

	return nil
}

// ClampProgress forces a progress value into the [0, 100] range.
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
