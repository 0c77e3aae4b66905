package clickup

import (
	"context"
	"encoding/json"
)

// Plain endpoint wrappers. These are 1:1 mappings onto the catalog: the
// payload passes through undecoded and the caller owns its schema.

// GetAuthorizedUser returns the account details of the token owner.
func (c *Client) GetAuthorizedUser(ctx context.Context, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpAuthorizedUser, nil, nil, nil, copts...)
}

// GetAuthorizedTeams returns the workspaces available to the token owner.
func (c *Client) GetAuthorizedTeams(ctx context.Context, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpAuthorizedTeams, nil, nil, nil, copts...)
}

// GetTeams returns user groups in a workspace.
func (c *Client) GetTeams(ctx context.Context, teamID, groupIDs string, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpTeams, nil, Params{"team_id": teamID, "group_ids": groupIDs}, nil, copts...)
}

// GetSpaces returns the spaces of a workspace.
func (c *Client) GetSpaces(ctx context.Context, teamID string, archived bool, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpSpaces, map[string]string{"team_id": teamID}, Params{"archived": archived}, nil, copts...)
}

// GetSpace returns one space.
func (c *Client) GetSpace(ctx context.Context, spaceID string, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpSpace, map[string]string{"space_id": spaceID}, nil, nil, copts...)
}

// GetFolders returns the folders of a space.
func (c *Client) GetFolders(ctx context.Context, spaceID string, archived bool, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpFolders, map[string]string{"space_id": spaceID}, Params{"archived": archived}, nil, copts...)
}

// GetFolder returns one folder.
func (c *Client) GetFolder(ctx context.Context, folderID string, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpFolder, map[string]string{"folder_id": folderID}, nil, nil, copts...)
}

// GetLists returns the lists of a folder.
func (c *Client) GetLists(ctx context.Context, folderID string, archived bool, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpLists, map[string]string{"folder_id": folderID}, Params{"archived": archived}, nil, copts...)
}

// GetList returns one list.
func (c *Client) GetList(ctx context.Context, listID string, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpList, map[string]string{"list_id": listID}, nil, nil, copts...)
}

// GetFolderlessLists returns lists of a space that sit outside any folder.
func (c *Client) GetFolderlessLists(ctx context.Context, spaceID string, archived bool, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpFolderlessLists, map[string]string{"space_id": spaceID}, Params{"archived": archived}, nil, copts...)
}

// TasksQuery carries the optional filters of the tasks operations. Array
// filters must either be empty or hold at least two elements; callers with a
// single real value pad with an empty placeholder (ClickUp rejects
// one-element filter arrays, and padding is the caller's decision).
type TasksQuery struct {
	Archived                   bool
	IncludeMarkdownDescription bool
	Page                       *int
	OrderBy                    string
	Reverse                    bool
	Subtasks                   bool
	IncludeClosed              bool
	Statuses                   []string
	Assignees                  []string
	Tags                       []string
	DueDateGT                  int64
	DueDateLT                  int64
	DateCreatedGT              int64
	DateCreatedLT              int64
	DateUpdatedGT              int64
	DateUpdatedLT              int64
	DateDoneGT                 int64
	DateDoneLT                 int64
}

func (q TasksQuery) params() Params {
	p := Params{}
	if q.Archived {
		p["archived"] = true
	}
	if q.IncludeMarkdownDescription {
		p["include_markdown_description"] = true
	}
	if q.Page != nil {
		p["page"] = *q.Page
	}
	if q.OrderBy != "" {
		p["order_by"] = q.OrderBy
	}
	if q.Reverse {
		p["reverse"] = true
	}
	if q.Subtasks {
		p["subtasks"] = true
	}
	if q.IncludeClosed {
		p["include_closed"] = true
	}
	if len(q.Statuses) > 0 {
		p["statuses"] = q.Statuses
	}
	if len(q.Assignees) > 0 {
		p["assignees"] = q.Assignees
	}
	if len(q.Tags) > 0 {
		p["tags"] = q.Tags
	}
	setMs := func(key string, v int64) {
		if v != 0 {
			p[key] = v
		}
	}
	setMs("due_date_gt", q.DueDateGT)
	setMs("due_date_lt", q.DueDateLT)
	setMs("date_created_gt", q.DateCreatedGT)
	setMs("date_created_lt", q.DateCreatedLT)
	setMs("date_updated_gt", q.DateUpdatedGT)
	setMs("date_updated_lt", q.DateUpdatedLT)
	setMs("date_done_gt", q.DateDoneGT)
	setMs("date_done_lt", q.DateDoneLT)
	return p
}

// GetTasks returns one page of tasks in a list.
func (c *Client) GetTasks(ctx context.Context, listID string, query TasksQuery, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpTasks, map[string]string{"list_id": listID}, query.params(), nil, copts...)
}

// GetTeamTasks returns one page of tasks across a whole workspace.
func (c *Client) GetTeamTasks(ctx context.Context, teamID string, query TasksQuery, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpTeamTasks, map[string]string{"team_id": teamID}, query.params(), nil, copts...)
}

// GetTask returns one task.
func (c *Client) GetTask(ctx context.Context, taskID string, includeMarkdown bool, copts ...CallOption) (json.RawMessage, error) {
	params := Params{}
	if includeMarkdown {
		params["include_markdown_description"] = true
	}
	return c.raw(ctx, OpTask, map[string]string{"task_id": taskID}, params, nil, copts...)
}

// GetUser returns one workspace member.
func (c *Client) GetUser(ctx context.Context, teamID, userID string, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpUser, map[string]string{"team_id": teamID, "user_id": userID}, nil, nil, copts...)
}

// TimeEntriesQuery carries the filters of the time-entries operation. At
// most one of SpaceID, FolderID, ListID, TaskID may be set; the assignee
// filter follows the same two-element padding rule as the task filters.
type TimeEntriesQuery struct {
	StartDate            int64
	EndDate              int64
	Assignee             []string
	IncludeTaskTags      bool
	IncludeLocationNames bool
	SpaceID              string
	FolderID             string
	ListID               string
	TaskID               string
}

func (q TimeEntriesQuery) params() Params {
	p := Params{}
	if q.StartDate != 0 {
		p["start_date"] = q.StartDate
	}
	if q.EndDate != 0 {
		p["end_date"] = q.EndDate
	}
	if len(q.Assignee) > 0 {
		p["assignee"] = q.Assignee
	}
	if q.IncludeTaskTags {
		p["include_task_tags"] = true
	}
	if q.IncludeLocationNames {
		p["include_location_names"] = true
	}
	if q.SpaceID != "" {
		p["space_id"] = q.SpaceID
	}
	if q.FolderID != "" {
		p["folder_id"] = q.FolderID
	}
	if q.ListID != "" {
		p["list_id"] = q.ListID
	}
	if q.TaskID != "" {
		p["task_id"] = q.TaskID
	}
	return p
}

// GetTimeEntries returns time entries of a workspace within a date range.
func (c *Client) GetTimeEntries(ctx context.Context, teamID string, query TimeEntriesQuery, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpTimeEntries, map[string]string{"team_id": teamID}, query.params(), nil, copts...)
}

// GetTaskComments returns the comments of a task.
func (c *Client) GetTaskComments(ctx context.Context, taskID string, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpTaskComments, map[string]string{"task_id": taskID}, nil, nil, copts...)
}

// GetListComments returns the comments of a list.
func (c *Client) GetListComments(ctx context.Context, listID string, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpListComments, map[string]string{"list_id": listID}, nil, nil, copts...)
}

// GetChatViewComments returns the comments of a chat view.
func (c *Client) GetChatViewComments(ctx context.Context, viewID string, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpChatViewComments, map[string]string{"view_id": viewID}, nil, nil, copts...)
}

// GetCustomTaskTypes returns the custom task types of a workspace.
func (c *Client) GetCustomTaskTypes(ctx context.Context, teamID string, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpCustomTaskTypes, map[string]string{"team_id": teamID}, nil, nil, copts...)
}

// GetAccessibleCustomFields returns the custom fields of a list.
func (c *Client) GetAccessibleCustomFields(ctx context.Context, listID string, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpAccessibleCustomFields, map[string]string{"list_id": listID}, nil, nil, copts...)
}

// WorkspaceIDs lists the workspace (team) ids authorized for the token
// owner. Useful when a caller wants the aggregations without knowing its
// team id up front.
func (c *Client) WorkspaceIDs(ctx context.Context, copts ...CallOption) ([]string, error) {
	var envelope workspacesEnvelope
	if err := c.call(ctx, OpAuthorizedTeams, nil, nil, nil, &envelope, copts...); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(envelope.Teams))
	for _, team := range envelope.Teams {
		ids = append(ids, team.ID)
	}
	return ids, nil
}
