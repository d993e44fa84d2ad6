package taskstore

import (
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/model"
)

// CompletionStatus selects the completion bucket of the filter.
type CompletionStatus string

const (
	// StatusNone applies no completion bucket.
	StatusNone CompletionStatus = "none"
	// StatusCompleted keeps only tasks at 100% progress.
	StatusCompleted CompletionStatus = "completed"
	// StatusIncomplete keeps only tasks below 100% progress.
	StatusIncomplete CompletionStatus = "incomplete"
)

// Validate validates the completion status value.
func (s CompletionStatus) Validate() error {
	switch s {
	case StatusNone, StatusCompleted, StatusIncomplete:
		return nil
	}
	return fmt.Errorf("unknown completion status %q: %w", s, model.ErrNotValid)
}

// FilterResult is the filtered view of a task collection.
type FilterResult struct {
	Tasks []model.Task
	// IsFiltered reports whether a completion bucket is active. A search
	// term alone does not set it, only the completion status drives it.
	IsFiltered bool
}

// Filter computes a filtered view of the given tasks. It is a pure function,
// the input collection is never mutated.
//
// A non-empty search term (after trimming) keeps only tasks whose title
// contains it as a case-sensitive substring. The surviving tasks are then
// bucketed by completion status.
func Filter(tasks []model.Task, search string, status CompletionStatus) FilterResult {
	search = strings.TrimSpace(search)

	matched := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if search != "" && !strings.Contains(t.Title, search) {
			continue
		}

		switch status {
		case StatusCompleted:
			if t.Progress != 100 {
				continue
			}
		case StatusIncomplete:
			if t.Progress >= 100 {
				continue
			}
		}

		matched = append(matched, t)
	}

	return FilterResult{
		Tasks:      matched,
		IsFiltered: status != StatusNone,
	}
}
