package clickup

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WorktimeSummary maps usernames to their accumulated tracked duration in
// milliseconds. Built fresh per call, never persisted.
type WorktimeSummary map[string]int64

// TaskSummary maps usernames to the tasks assigned to them. A task with
// several assignees appears once under each matching username.
type TaskSummary map[string][]Task

// WorktimeRequest scopes a UserWorktime call. Assignees is an optional
// filter of user ids carried as strings so that a single-value filter can be
// padded with an empty placeholder per the two-element rule; non-numeric
// members are sent on the wire but never match a record locally.
type WorktimeRequest struct {
	TeamID       int64
	Assignees    []string
	StartDate    int64
	EndDate      int64
	OnlyBillable bool
}

func (r WorktimeRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.TeamID, validation.Required),
	); err != nil {
		return validationError(opUserWorktime, "%v", err)
	}
	return validateDateRange(opUserWorktime, r.StartDate, r.EndDate)
}

// TasksRequest scopes a UserTasks call. DateField selects which task date
// the range filters on; the range passes through to ClickUp as-is.
type TasksRequest struct {
	TeamID    int64
	Assignees []string
	StartDate int64
	EndDate   int64
	// DateField is "created" (default) or "due".
	DateField string
}

func (r TasksRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.TeamID, validation.Required),
		validation.Field(&r.DateField, validation.In("", "created", "due")),
	); err != nil {
		return validationError(opUserTasks, "%v", err)
	}
	return validateDateRange(opUserTasks, r.StartDate, r.EndDate)
}

const (
	opUserWorktime = "user-worktime"
	opUserTasks    = "user-tasks"
)

func validateDateRange(op string, start, end int64) error {
	if start > end {
		return validationError(op, "start_date %d is after end_date %d", start, end)
	}
	return nil
}

// UserWorktime sums tracked time per username across all time entries of a
// workspace in the requested range. Overlapping entries for one user are all
// summed; deduplication would hide what ClickUp actually recorded. An empty
// summary is a valid result, not an error; any fetch failure aborts the
// whole aggregation.
func (c *Client) UserWorktime(ctx context.Context, req WorktimeRequest, copts ...CallOption) (WorktimeSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	params := Params{"start_date": req.StartDate, "end_date": req.EndDate}
	if len(req.Assignees) > 0 {
		params["assignee"] = req.Assignees
	}
	filter := userIDFilter(req.Assignees)

	summary := WorktimeSummary{}
	err := c.fetchAllPages(ctx, OpTimeEntries,
		map[string]string{"team_id": strconv.FormatInt(req.TeamID, 10)}, params,
		func(raw json.RawMessage) (int, bool, error) {
			var page timeEntriesPage
			if err := json.Unmarshal(raw, &page); err != nil {
				return 0, false, &Error{Kind: KindUnknown, Op: opUserWorktime, Message: "decode time entries: " + err.Error()}
			}
			for _, entry := range page.Data {
				if filter != nil && !filter[entry.User.ID] {
					continue
				}
				if req.OnlyBillable && !entry.Billable {
					continue
				}
				summary[entry.User.Username] += entry.DurationMs()
			}
			return len(page.Data), false, nil
		}, copts...)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// UserTasks lists the tasks of a workspace in the requested range, grouped
// per assignee username. No dedup collapsing: the per-user view is the
// point.
func (c *Client) UserTasks(ctx context.Context, req TasksRequest, copts ...CallOption) (TaskSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	gtKey, ltKey := "date_created_gt", "date_created_lt"
	if req.DateField == "due" {
		gtKey, ltKey = "due_date_gt", "due_date_lt"
	}
	params := Params{"include_closed": true, "subtasks": true}
	if req.StartDate != 0 {
		params[gtKey] = req.StartDate
	}
	if req.EndDate != 0 {
		params[ltKey] = req.EndDate
	}
	if len(req.Assignees) > 0 {
		params["assignees"] = req.Assignees
	}
	filter := userIDFilter(req.Assignees)

	summary := TaskSummary{}
	err := c.fetchAllPages(ctx, OpTeamTasks,
		map[string]string{"team_id": strconv.FormatInt(req.TeamID, 10)}, params,
		func(raw json.RawMessage) (int, bool, error) {
			var page tasksPage
			if err := json.Unmarshal(raw, &page); err != nil {
				return 0, false, &Error{Kind: KindUnknown, Op: opUserTasks, Message: "decode tasks: " + err.Error()}
			}
			for _, task := range page.Tasks {
				for _, assignee := range task.Assignees {
					if filter != nil && !filter[assignee.ID] {
						continue
					}
					summary[assignee.Username] = append(summary[assignee.Username], task)
				}
			}
			return len(page.Tasks), page.LastPage, nil
		}, copts...)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// userIDFilter builds a membership set from the string-typed assignee
// filter. Padding placeholders and other non-numeric members are skipped,
// so they widen the wire filter without matching anything locally.
func userIDFilter(assignees []string) map[int64]bool {
	if len(assignees) == 0 {
		return nil
	}
	set := make(map[int64]bool, len(assignees))
	for _, raw := range assignees {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			set[id] = true
		}
	}
	return set
}

// FormatDuration renders milliseconds as H:MM:SS, the presentation the
// worktime report uses. Negative durations (running timers) keep their
// sign.
func FormatDuration(ms int64) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	secs := ms / 1000
	return fmt.Sprintf("%s%d:%02d:%02d", sign, secs/3600, (secs%3600)/60, secs%60)
}
