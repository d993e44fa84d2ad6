package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/taskdeck/taskdeck/internal/model"
)

// JSONPrinter prints task and log information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// taskOutput represents a task in JSON output.
type taskOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline,omitempty"`
	Progress    int    `json:"progress"`
	AssignedTo  string `json:"assigned_to"`
}

// logEntryOutput represents a log entry in JSON output.
type logEntryOutput struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Username   string         `json:"username"`
	Role       string         `json:"role"`
	Action     string         `json:"action"`
	LoginTime  time.Time      `json:"login_time"`
	LogoutTime *time.Time     `json:"logout_time"`
	IPAddress  string         `json:"ip_address"`
	SessionID  string         `json:"session_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

func newTaskOutput(t model.Task) taskOutput {
	out := taskOutput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Progress:    t.Progress,
		AssignedTo:  t.AssignedTo,
	}
	if t.Deadline != nil {
		out.Deadline = t.Deadline.Format("2006-01-02")
	}
	return out
}

func newLogEntryOutput(e model.LogEntry) logEntryOutput {
	out := logEntryOutput{
		ID:        e.ID,
		UserID:    e.UserID,
		Username:  e.Username,
		Role:      e.Role,
		Action:    e.Action,
		LoginTime: e.LoginTime.UTC(),
		IPAddress: e.IPAddress,
		SessionID: e.SessionID,
		Details:   e.Details,
	}
	if e.LogoutTime != nil {
		t := e.LogoutTime.UTC()
		out.LogoutTime = &t
	}
	return out
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintTaskList prints tasks in JSON format.
func (j *JSONPrinter) PrintTaskList(tasks []model.Task) error {
	items := make([]taskOutput, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskOutput(t)
	}
	return j.encode(items)
}

// PrintTask prints a single task in JSON format.
func (j *JSONPrinter) PrintTask(task model.Task) error {
	return j.encode(newTaskOutput(task))
}

// PrintLogList prints log entries in JSON format.
func (j *JSONPrinter) PrintLogList(entries []model.LogEntry) error {
	items := make([]logEntryOutput, len(entries))
	for i, e := range entries {
		items[i] = newLogEntryOutput(e)
	}
	return j.encode(items)
}

// PrintLogEntry prints a single log entry in JSON format.
func (j *JSONPrinter) PrintLogEntry(entry model.LogEntry) error {
	return j.encode(newLogEntryOutput(entry))
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}
