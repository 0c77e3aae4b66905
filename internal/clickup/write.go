package clickup

import (
	"context"
	"encoding/json"
)

// CreateTaskRequest is the typed body of the create-task operation. Optional
// fields marshal away when unset; dates are epoch-ms per ClickUp convention.
type CreateTaskRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Parent        string   `json:"parent,omitempty"`
	Assignees     []int64  `json:"assignees,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Status        string   `json:"status,omitempty"`
	Priority      *int     `json:"priority,omitempty"`
	DueDate       *int64   `json:"due_date,omitempty"`
	DueDateTime   bool     `json:"due_date_time,omitempty"`
	TimeEstimate  *int64   `json:"time_estimate,omitempty"`
	StartDate     *int64   `json:"start_date,omitempty"`
	StartDateTime bool     `json:"start_date_time,omitempty"`
	NotifyAll     bool     `json:"notify_all,omitempty"`
	LinksTo       string   `json:"links_to,omitempty"`
	CustomItemID  *int64   `json:"custom_item_id,omitempty"`
}

// CreateTask creates a task (or subtask, via Parent) in a list.
func (c *Client) CreateTask(ctx context.Context, listID string, req CreateTaskRequest, copts ...CallOption) (json.RawMessage, error) {
	if req.Name == "" {
		return nil, validationError(OpCreateTask, "task name is required")
	}
	return c.raw(ctx, OpCreateTask, map[string]string{"list_id": listID}, nil, req, copts...)
}

// EditTask updates task fields; body keys mirror the create-task contract
// and pass through as given.
func (c *Client) EditTask(ctx context.Context, taskID string, body json.RawMessage, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpEditTask, map[string]string{"task_id": taskID}, nil, body, copts...)
}

// CreateChecklist adds a named checklist to a task.
func (c *Client) CreateChecklist(ctx context.Context, taskID, name string, copts ...CallOption) (json.RawMessage, error) {
	if name == "" {
		return nil, validationError(OpCreateChecklist, "checklist name is required")
	}
	return c.raw(ctx, OpCreateChecklist, map[string]string{"task_id": taskID}, nil, map[string]string{"name": name}, copts...)
}

// EditChecklist renames or reorders a checklist.
func (c *Client) EditChecklist(ctx context.Context, checklistID string, body json.RawMessage, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpEditChecklist, map[string]string{"checklist_id": checklistID}, nil, body, copts...)
}

// ChecklistItem is one item to insert into a checklist. Name is required,
// the assignee is optional.
type ChecklistItem struct {
	Name     string `json:"name"`
	Assignee *int64 `json:"assignee,omitempty"`
}

// CreateChecklistItem adds one item to a checklist.
func (c *Client) CreateChecklistItem(ctx context.Context, checklistID string, item ChecklistItem, copts ...CallOption) (json.RawMessage, error) {
	if item.Name == "" {
		return nil, validationError(OpCreateChecklistItem, "checklist item name is required")
	}
	return c.raw(ctx, OpCreateChecklistItem, map[string]string{"checklist_id": checklistID}, nil, item, copts...)
}

// EditChecklistItem updates one checklist item.
func (c *Client) EditChecklistItem(ctx context.Context, checklistID, itemID string, body json.RawMessage, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpEditChecklistItem,
		map[string]string{"checklist_id": checklistID, "checklist_item_id": itemID}, nil, body, copts...)
}

// CreateTaskComment posts a comment on a task.
func (c *Client) CreateTaskComment(ctx context.Context, taskID string, body json.RawMessage, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpCreateTaskComment, map[string]string{"task_id": taskID}, nil, body, copts...)
}

// CreateListComment posts a comment on a list.
func (c *Client) CreateListComment(ctx context.Context, listID string, body json.RawMessage, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpCreateListComment, map[string]string{"list_id": listID}, nil, body, copts...)
}

// CreateChatViewComment posts a comment on a chat view.
func (c *Client) CreateChatViewComment(ctx context.Context, viewID string, body json.RawMessage, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpCreateChatViewComment, map[string]string{"view_id": viewID}, nil, body, copts...)
}

// UpdateComment edits an existing comment.
func (c *Client) UpdateComment(ctx context.Context, commentID string, body json.RawMessage, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpUpdateComment, map[string]string{"comment_id": commentID}, nil, body, copts...)
}

// AddTaskLink links two tasks.
func (c *Client) AddTaskLink(ctx context.Context, taskID, linksTo string, copts ...CallOption) (json.RawMessage, error) {
	return c.raw(ctx, OpAddTaskLink, map[string]string{"task_id": taskID, "links_to": linksTo}, nil, nil, copts...)
}

// AddTaskDependency marks a task as waiting on or blocking another one.
// Exactly one of dependsOn and dependencyOf must be set.
func (c *Client) AddTaskDependency(ctx context.Context, taskID, dependsOn, dependencyOf string, copts ...CallOption) (json.RawMessage, error) {
	if (dependsOn == "") == (dependencyOf == "") {
		return nil, validationError(OpAddTaskDependency, "set exactly one of depends_on and dependency_of")
	}
	body := map[string]string{}
	if dependsOn != "" {
		body["depends_on"] = dependsOn
	} else {
		body["dependency_of"] = dependencyOf
	}
	return c.raw(ctx, OpAddTaskDependency, map[string]string{"task_id": taskID}, nil, body, copts...)
}
