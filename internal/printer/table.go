package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/taskdeck/taskdeck/internal/model"
)

// TablePrinter prints task and log information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintTaskList prints tasks in a table format.
func (t *TablePrinter) PrintTaskList(tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tTITLE\tPRIORITY\tPROGRESS\tDEADLINE\tASSIGNED TO")

	for _, task := range tasks {
		deadline := "-"
		if task.Deadline != nil {
			deadline = task.Deadline.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\t%s\n",
			task.ID, task.Title, task.Priority, task.Progress, deadline, task.AssignedTo)
	}

	return nil
}

// PrintTask prints a detailed task view.
func (t *TablePrinter) PrintTask(task model.Task) error {
	fmt.Fprintf(t.writer, "ID:          %s\n", task.ID)
	fmt.Fprintf(t.writer, "Title:       %s\n", task.Title)
	fmt.Fprintf(t.writer, "Description: %s\n", task.Description)
	fmt.Fprintf(t.writer, "Priority:    %s\n", task.Priority)
	fmt.Fprintf(t.writer, "Progress:    %d%%\n", task.Progress)
	if task.Deadline != nil {
		fmt.Fprintf(t.writer, "Deadline:    %s\n", task.Deadline.Format("2006-01-02"))
	}
	fmt.Fprintf(t.writer, "Assigned to: %s\n", task.AssignedTo)

	return nil
}

// PrintLogList prints log entries in a table format.
func (t *TablePrinter) PrintLogList(entries []model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tUSERNAME\tROLE\tACTION\tIP\tLOGIN\tLOGOUT")

	for _, e := range entries {
		logout := "-"
		if e.LogoutTime != nil {
			logout = TimeAgo(*e.LogoutTime)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Username, e.Role, e.Action, e.IPAddress, TimeAgo(e.LoginTime), logout)
	}

	return nil
}

// PrintLogEntry prints a detailed log entry view.
func (t *TablePrinter) PrintLogEntry(e model.LogEntry) error {
	fmt.Fprintf(t.writer, "ID:        %s\n", e.ID)
	fmt.Fprintf(t.writer, "User:      %s (%s)\n", e.Username, e.UserID)
	fmt.Fprintf(t.writer, "Role:      %s\n", e.Role)
	fmt.Fprintf(t.writer, "Action:    %s\n", e.Action)
	fmt.Fprintf(t.writer, "Time:      %s\n", FormatTimestamp(e.LoginTime))
	if e.LogoutTime != nil {
		fmt.Fprintf(t.writer, "Logout:    %s\n", FormatTimestamp(*e.LogoutTime))
	}
	fmt.Fprintf(t.writer, "IP:        %s\n", e.IPAddress)
	if e.SessionID != "" {
		fmt.Fprintf(t.writer, "Session:   %s\n", e.SessionID)
	}
	for k, v := range e.Details {
		fmt.Fprintf(t.writer, "Detail:    %s=%v\n", k, v)
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}
