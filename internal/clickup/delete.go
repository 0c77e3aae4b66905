package clickup

import "context"

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, commentID string, copts ...CallOption) error {
	return c.call(ctx, OpDeleteComment, map[string]string{"comment_id": commentID}, nil, nil, nil, copts...)
}

// RemoveTaskFromList detaches a task from an additional list.
func (c *Client) RemoveTaskFromList(ctx context.Context, listID, taskID string, copts ...CallOption) error {
	return c.call(ctx, OpRemoveTaskFromList, map[string]string{"list_id": listID, "task_id": taskID}, nil, nil, nil, copts...)
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string, copts ...CallOption) error {
	return c.call(ctx, OpDeleteTask, map[string]string{"task_id": taskID}, nil, nil, nil, copts...)
}

// DeleteChecklist removes a checklist from its task.
func (c *Client) DeleteChecklist(ctx context.Context, checklistID string, copts ...CallOption) error {
	return c.call(ctx, OpDeleteChecklist, map[string]string{"checklist_id": checklistID}, nil, nil, nil, copts...)
}

// DeleteChecklistItem removes one item from a checklist.
func (c *Client) DeleteChecklistItem(ctx context.Context, checklistID, itemID string, copts ...CallOption) error {
	return c.call(ctx, OpDeleteChecklistItem,
		map[string]string{"checklist_id": checklistID, "checklist_item_id": itemID}, nil, nil, nil, copts...)
}

// DeleteTaskLink unlinks two tasks.
func (c *Client) DeleteTaskLink(ctx context.Context, taskID, linksTo string, copts ...CallOption) error {
	return c.call(ctx, OpDeleteTaskLink, map[string]string{"task_id": taskID, "links_to": linksTo}, nil, nil, nil, copts...)
}

// DeleteTaskDependency removes a dependency relation. Exactly one of
// dependsOn and dependencyOf must be set.
func (c *Client) DeleteTaskDependency(ctx context.Context, taskID, dependsOn, dependencyOf string, copts ...CallOption) error {
	if (dependsOn == "") == (dependencyOf == "") {
		return validationError(OpDeleteTaskDependency, "set exactly one of depends_on and dependency_of")
	}
	params := Params{}
	if dependsOn != "" {
		params["depends_on"] = dependsOn
	} else {
		params["dependency_of"] = dependencyOf
	}
	return c.call(ctx, OpDeleteTaskDependency, map[string]string{"task_id": taskID}, params, nil, nil, copts...)
}
