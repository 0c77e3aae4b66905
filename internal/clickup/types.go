package clickup

import (
	"encoding/json"
	"strconv"
)

// The aggregation layer only cares about a handful of fields; everything
// else in the ClickUp payloads passes through untouched. ClickUp encodes
// most numbers as strings, so numeric fields decode through json.Number-ish
// helpers instead of trusting the wire type.

// Assignee is a user reference on a task.
type Assignee struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TaskStatus is the status object attached to a task.
type TaskStatus struct {
	Status string `json:"status"`
	Type   string `json:"type"`
	Color  string `json:"color"`
}

// Task is the subset of a ClickUp task record the aggregators read.
type Task struct {
	ID          string     `json:"id"`
	CustomID    string     `json:"custom_id,omitempty"`
	Name        string     `json:"name"`
	Status      TaskStatus `json:"status"`
	Assignees   []Assignee `json:"assignees"`
	DateCreated string     `json:"date_created,omitempty"`
	DueDate     string     `json:"due_date,omitempty"`
	TimeSpent   int64      `json:"time_spent,omitempty"`
	URL         string     `json:"url,omitempty"`
}

// tasksPage is the envelope of the paginated task endpoints.
type tasksPage struct {
	Tasks    []Task `json:"tasks"`
	LastPage bool   `json:"last_page"`
}

// EntryUser identifies who tracked a time entry.
type EntryUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// EntryTask is the task reference inside a time entry, when the entry is
// attached to a task at all.
type EntryTask struct {
	ID       string `json:"id"`
	CustomID string `json:"custom_id"`
	Name     string `json:"name"`
}

// TimeEntry is one tracked interval. Duration, start and end arrive as
// epoch-ms strings; a negative duration means the timer is still running.
type TimeEntry struct {
	ID       string      `json:"id"`
	Task     *EntryTask  `json:"task"`
	User     EntryUser   `json:"user"`
	Billable bool        `json:"billable"`
	Start    json.Number `json:"start"`
	End      json.Number `json:"end"`
	Duration json.Number `json:"duration"`
}

// DurationMs returns the tracked duration in milliseconds, 0 when absent or
// malformed.
func (e TimeEntry) DurationMs() int64 {
	return numberToInt64(e.Duration)
}

// timeEntriesPage is the envelope of the time-entries endpoint.
type timeEntriesPage struct {
	Data []TimeEntry `json:"data"`
}

// Workspace is an authorized team, as returned by the authorized-teams
// operation.
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type workspacesEnvelope struct {
	Teams []Workspace `json:"teams"`
}

// Checklist is the envelope ClickUp returns for checklist writes.
type Checklist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"items"`
}

type checklistEnvelope struct {
	Checklist Checklist `json:"checklist"`
}

func numberToInt64(n json.Number) int64 {
	if n == "" {
		return 0
	}
	if v, err := n.Int64(); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
		return int64(f)
	}
	return 0
}
