package printer

import "github.com/taskdeck/taskdeck/internal/model"

// Printer knows how to print task and activity log information in different
// formats.
type Printer interface {
	PrintTaskList(tasks []model.Task) error
	PrintTask(task model.Task) error
	PrintLogList(entries []model.LogEntry) error
	PrintLogEntry(entry model.LogEntry) error
	PrintMessage(msg string) error
}
