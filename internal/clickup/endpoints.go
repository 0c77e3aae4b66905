package clickup

// Endpoint describes one ClickUp API operation: HTTP verb, path template with
// {named} placeholders, and the query parameters it accepts. The catalog is
// immutable and defined once at process start.
type Endpoint struct {
	Method   string
	Path     string
	Required []string
	Optional []string
	// ArrayParams must be sequences of at least two elements when present.
	// ClickUp rejects single-element filter arrays; callers with one real
	// value pad with an empty placeholder. The client validates, it never
	// auto-pads.
	ArrayParams []string
}

// Operation names as exposed to callers and re-exposed by the gateway.
const (
	OpAuthorizedTeams        = "authorized-teams"
	OpAuthorizedUser         = "authorized-user"
	OpTeams                  = "teams"
	OpSpaces                 = "spaces"
	OpSpace                  = "space"
	OpFolders                = "folders"
	OpFolder                 = "folder"
	OpLists                  = "lists"
	OpList                   = "list"
	OpFolderlessLists        = "folderless-lists"
	OpTasks                  = "tasks"
	OpTeamTasks              = "team-tasks"
	OpTask                   = "task"
	OpUser                   = "user"
	OpTimeEntries            = "time-entries"
	OpTaskComments           = "task-comments"
	OpListComments           = "list-comments"
	OpChatViewComments       = "chat-view-comments"
	OpCustomTaskTypes        = "custom-task-types"
	OpAccessibleCustomFields = "accessible-custom-fields"

	OpCreateTask            = "create-task"
	OpEditTask              = "edit-task"
	OpCreateChecklist       = "create-checklist"
	OpEditChecklist         = "edit-checklist"
	OpCreateChecklistItem   = "create-checklist-item"
	OpEditChecklistItem     = "edit-checklist-item"
	OpCreateTaskComment     = "create-task-comment"
	OpCreateListComment     = "create-list-comment"
	OpCreateChatViewComment = "create-chat-view-comment"
	OpUpdateComment         = "update-comment"
	OpAddTaskLink           = "add-task-link"
	OpAddTaskDependency     = "add-task-dependency"

	OpDeleteComment        = "delete-comment"
	OpRemoveTaskFromList   = "remove-task-from-list"
	OpDeleteTask           = "delete-task"
	OpDeleteChecklist      = "delete-checklist"
	OpDeleteChecklistItem  = "delete-checklist-item"
	OpDeleteTaskLink       = "delete-task-link"
	OpDeleteTaskDependency = "delete-task-dependency"
)

var catalog = map[string]Endpoint{
	OpAuthorizedUser:  {Method: "GET", Path: "user"},
	OpAuthorizedTeams: {Method: "GET", Path: "team"},
	OpTeams: {
		Method:   "GET",
		Path:     "group",
		Optional: []string{"team_id", "group_ids"},
	},
	OpSpaces: {
		Method:   "GET",
		Path:     "team/{team_id}/space",
		Optional: []string{"archived"},
	},
	OpSpace: {Method: "GET", Path: "space/{space_id}"},
	OpFolders: {
		Method:   "GET",
		Path:     "space/{space_id}/folder",
		Optional: []string{"archived"},
	},
	OpFolder: {Method: "GET", Path: "folder/{folder_id}"},
	OpLists: {
		Method:   "GET",
		Path:     "folder/{folder_id}/list",
		Optional: []string{"archived"},
	},
	OpList: {Method: "GET", Path: "list/{list_id}"},
	OpFolderlessLists: {
		Method:   "GET",
		Path:     "space/{space_id}/list",
		Optional: []string{"archived"},
	},
	OpTasks: {
		Method: "GET",
		Path:   "list/{list_id}/task",
		Optional: []string{
			"archived", "include_markdown_description", "page", "order_by",
			"reverse", "subtasks", "statuses", "include_closed", "assignees",
			"tags", "due_date_gt", "due_date_lt", "date_created_gt",
			"date_created_lt", "date_updated_gt", "date_updated_lt",
			"date_done_gt", "date_done_lt", "custom_items",
		},
		ArrayParams: []string{"statuses", "assignees", "tags"},
	},
	OpTeamTasks: {
		Method: "GET",
		Path:   "team/{team_id}/task",
		Optional: []string{
			"page", "order_by", "reverse", "subtasks", "statuses",
			"include_closed", "assignees", "tags", "due_date_gt",
			"due_date_lt", "date_created_gt", "date_created_lt",
			"date_updated_gt", "date_updated_lt", "date_done_gt",
			"date_done_lt", "space_ids", "project_ids", "list_ids",
		},
		ArrayParams: []string{"statuses", "assignees", "tags"},
	},
	OpTask: {
		Method:   "GET",
		Path:     "task/{task_id}",
		Optional: []string{"include_markdown_description", "custom_task_ids", "team_id"},
	},
	OpUser: {Method: "GET", Path: "team/{team_id}/user/{user_id}"},
	OpTimeEntries: {
		Method: "GET",
		Path:   "team/{team_id}/time_entries",
		Optional: []string{
			"start_date", "end_date", "assignee", "include_task_tags",
			"include_location_names", "space_id", "folder_id", "list_id",
			"task_id", "custom_task_ids", "team_id", "page",
		},
		ArrayParams: []string{"assignee"},
	},
	OpTaskComments: {
		Method:   "GET",
		Path:     "task/{task_id}/comment",
		Optional: []string{"custom_task_ids", "team_id", "start", "start_id"},
	},
	OpListComments: {
		Method:   "GET",
		Path:     "list/{list_id}/comment",
		Optional: []string{"start", "start_id"},
	},
	OpChatViewComments: {
		Method:   "GET",
		Path:     "view/{view_id}/comment",
		Optional: []string{"start", "start_id"},
	},
	OpCustomTaskTypes:        {Method: "GET", Path: "team/{team_id}/custom_item"},
	OpAccessibleCustomFields: {Method: "GET", Path: "list/{list_id}/field"},

	OpCreateTask: {
		Method:   "POST",
		Path:     "list/{list_id}/task",
		Optional: []string{"custom_task_ids", "team_id"},
	},
	OpEditTask: {
		Method:   "PUT",
		Path:     "task/{task_id}",
		Optional: []string{"custom_task_ids", "team_id"},
	},
	OpCreateChecklist: {
		Method:   "POST",
		Path:     "task/{task_id}/checklist",
		Optional: []string{"custom_task_ids", "team_id"},
	},
	OpEditChecklist: {Method: "PUT", Path: "checklist/{checklist_id}"},
	OpCreateChecklistItem: {
		Method: "POST",
		Path:   "checklist/{checklist_id}/checklist_item",
	},
	OpEditChecklistItem: {
		Method: "PUT",
		Path:   "checklist/{checklist_id}/checklist_item/{checklist_item_id}",
	},
	OpCreateTaskComment: {
		Method:   "POST",
		Path:     "task/{task_id}/comment",
		Optional: []string{"custom_task_ids", "team_id"},
	},
	OpCreateListComment:     {Method: "POST", Path: "list/{list_id}/comment"},
	OpCreateChatViewComment: {Method: "POST", Path: "view/{view_id}/comment"},
	OpUpdateComment:         {Method: "PUT", Path: "comment/{comment_id}"},
	OpAddTaskLink: {
		Method:   "POST",
		Path:     "task/{task_id}/link/{links_to}",
		Optional: []string{"custom_task_ids", "team_id"},
	},
	OpAddTaskDependency: {
		Method:   "POST",
		Path:     "task/{task_id}/dependency",
		Optional: []string{"custom_task_ids", "team_id"},
	},

	OpDeleteComment: {Method: "DELETE", Path: "comment/{comment_id}"},
	OpRemoveTaskFromList: {
		Method: "DELETE",
		Path:   "list/{list_id}/task/{task_id}",
	},
	OpDeleteTask: {
		Method:   "DELETE",
		Path:     "task/{task_id}",
		Optional: []string{"custom_task_ids", "team_id"},
	},
	OpDeleteChecklist: {Method: "DELETE", Path: "checklist/{checklist_id}"},
	OpDeleteChecklistItem: {
		Method: "DELETE",
		Path:   "checklist/{checklist_id}/checklist_item/{checklist_item_id}",
	},
	OpDeleteTaskLink: {
		Method:   "DELETE",
		Path:     "task/{task_id}/link/{links_to}",
		Optional: []string{"custom_task_ids", "team_id"},
	},
	OpDeleteTaskDependency: {
		Method:   "DELETE",
		Path:     "task/{task_id}/dependency",
		Optional: []string{"depends_on", "dependency_of", "custom_task_ids", "team_id"},
	},
}

func lookupEndpoint(op string) (Endpoint, *Error) {
	ep, ok := catalog[op]
	if !ok {
		return Endpoint{}, &Error{
			Kind:    KindUnknownOperation,
			Op:      op,
			Message: "operation not in endpoint catalog",
		}
	}
	return ep, nil
}
