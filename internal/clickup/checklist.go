package clickup

import (
	"context"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Compound operations chain several ClickUp writes. ClickUp offers no
// transaction across them, so this is modelled honestly as a saga: steps run
// strictly in order, the first failure stops the chain, and the result
// reports whatever prefix of steps already succeeded. Nothing is rolled
// back.

const (
	opChecklistItems = "create-checklist-items"
	opTaskComposite  = "create-task-with-checklist-and-items"
)

// ChecklistItemsRequest adds items to a checklist. Either ChecklistID names
// an existing checklist, or TaskID plus ChecklistName create a fresh one
// first. Exactly one of the two modes may be used.
type ChecklistItemsRequest struct {
	TaskID        string
	ChecklistID   string
	ChecklistName string
	Items         []ChecklistItem
}

func (r ChecklistItemsRequest) Validate() error {
	if (r.TaskID == "") == (r.ChecklistID == "") {
		return validationError(opChecklistItems, "set exactly one of task_id and checklist_id")
	}
	if r.ChecklistID != "" && r.ChecklistName != "" {
		return validationError(opChecklistItems, "checklist_name is not allowed with an existing checklist_id")
	}
	if r.TaskID != "" && r.ChecklistName == "" {
		return validationError(opChecklistItems, "checklist_name is required when creating a checklist under task_id")
	}
	if err := validation.Validate(r.Items, validation.Required); err != nil {
		return validationError(opChecklistItems, "checklist_items must not be empty")
	}
	for i, item := range r.Items {
		if item.Name == "" {
			return validationError(opChecklistItems, "checklist item %d is missing a name", i)
		}
	}
	return nil
}

// ChecklistResult reports the outcome of a checklist saga. On partial
// failure it comes back alongside the error, carrying the created checklist
// id and the ids of the items inserted before the failing step.
type ChecklistResult struct {
	ChecklistID string   `json:"checklist_id"`
	ItemIDs     []string `json:"item_ids"`
}

// CreateChecklistItems runs the checklist saga. When both a result and an
// error are returned, the result describes the prefix that succeeded; items
// after the failed one were never attempted.
func (c *Client) CreateChecklistItems(ctx context.Context, req ChecklistItemsRequest, copts ...CallOption) (*ChecklistResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &ChecklistResult{ChecklistID: req.ChecklistID}
	if req.ChecklistID == "" {
		id, err := c.createChecklistID(ctx, req.TaskID, req.ChecklistName, copts...)
		if err != nil {
			return nil, err
		}
		result.ChecklistID = id
	}

	for _, item := range req.Items {
		itemID, err := c.createChecklistItemID(ctx, result.ChecklistID, item, copts...)
		if err != nil {
			return result, err
		}
		result.ItemIDs = append(result.ItemIDs, itemID)
	}
	return result, nil
}

// ChecklistSpec pairs a checklist name with its initial items, for the
// comprehensive task saga.
type ChecklistSpec struct {
	Name  string          `json:"name"`
	Items []ChecklistItem `json:"items"`
}

// TaskCompositeRequest creates a task and populates its checklists in one
// chained call.
type TaskCompositeRequest struct {
	ListID     string
	Task       CreateTaskRequest
	Checklists []ChecklistSpec
}

func (r TaskCompositeRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.ListID, validation.Required),
	); err != nil {
		return validationError(opTaskComposite, "%v", err)
	}
	if r.Task.Name == "" {
		return validationError(opTaskComposite, "task name is required")
	}
	for i, cl := range r.Checklists {
		if cl.Name == "" {
			return validationError(opTaskComposite, "checklist %d is missing a name", i)
		}
		for j, item := range cl.Items {
			if item.Name == "" {
				return validationError(opTaskComposite, "checklist %d item %d is missing a name", i, j)
			}
		}
	}
	return nil
}

// TaskCompositeResult reports the task saga outcome, including partial
// checklist state when a step failed mid-chain.
type TaskCompositeResult struct {
	TaskID     string            `json:"task_id"`
	Checklists []ChecklistResult `json:"checklists"`
}

// CreateTaskWithChecklistAndItems chains create-task, create-checklist and
// create-checklist-item in order. The first failing step stops the chain;
// the result reports every step that already succeeded.
func (c *Client) CreateTaskWithChecklistAndItems(ctx context.Context, req TaskCompositeRequest, copts ...CallOption) (*TaskCompositeResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, err := c.CreateTask(ctx, req.ListID, req.Task, copts...)
	if err != nil {
		return nil, err
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &created); err != nil || created.ID == "" {
		return nil, &Error{Kind: KindUnknown, Op: opTaskComposite, Message: "create-task response carries no task id"}
	}

	result := &TaskCompositeResult{TaskID: created.ID}
	for _, spec := range req.Checklists {
		clResult := ChecklistResult{}
		clResult.ChecklistID, err = c.createChecklistID(ctx, created.ID, spec.Name, copts...)
		if err != nil {
			return result, err
		}
		for _, item := range spec.Items {
			itemID, err := c.createChecklistItemID(ctx, clResult.ChecklistID, item, copts...)
			if err != nil {
				result.Checklists = append(result.Checklists, clResult)
				return result, err
			}
			clResult.ItemIDs = append(clResult.ItemIDs, itemID)
		}
		result.Checklists = append(result.Checklists, clResult)
	}
	return result, nil
}

func (c *Client) createChecklistID(ctx context.Context, taskID, name string, copts ...CallOption) (string, error) {
	var envelope checklistEnvelope
	if err := c.call(ctx, OpCreateChecklist, map[string]string{"task_id": taskID}, nil,
		map[string]string{"name": name}, &envelope, copts...); err != nil {
		return "", err
	}
	if envelope.Checklist.ID == "" {
		return "", &Error{Kind: KindUnknown, Op: OpCreateChecklist, Message: "create-checklist response carries no checklist id"}
	}
	return envelope.Checklist.ID, nil
}

// createChecklistItemID inserts one item and digs its id out of the
// checklist envelope ClickUp echoes back: the matching item that was not
// part of the checklist before this insert.
func (c *Client) createChecklistItemID(ctx context.Context, checklistID string, item ChecklistItem, copts ...CallOption) (string, error) {
	var envelope checklistEnvelope
	if err := c.call(ctx, OpCreateChecklistItem, map[string]string{"checklist_id": checklistID}, nil,
		item, &envelope, copts...); err != nil {
		return "", err
	}
	items := envelope.Checklist.Items
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Name == item.Name {
			return items[i].ID, nil
		}
	}
	if len(items) > 0 {
		return items[len(items)-1].ID, nil
	}
	return "", &Error{Kind: KindUnknown, Op: OpCreateChecklistItem, Message: "create-checklist-item response carries no items"}
}
