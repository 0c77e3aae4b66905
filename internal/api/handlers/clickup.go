package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/westal/clickup-bridge/internal/clickup"
)

// ClickUpHandler re-exposes the plain endpoint wrappers 1:1. Every route
// accepts an optional token query parameter as a per-call credential
// override.
type ClickUpHandler struct {
	Click *clickup.Client
}

func NewClickUpHandler(click *clickup.Client) *ClickUpHandler {
	return &ClickUpHandler{Click: click}
}

func (h *ClickUpHandler) GetAuthorizedUser(c *gin.Context) {
	raw, err := h.Click.GetAuthorizedUser(c.Request.Context(), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetAuthorizedTeams(c *gin.Context) {
	raw, err := h.Click.GetAuthorizedTeams(c.Request.Context(), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetTeams(c *gin.Context) {
	raw, err := h.Click.GetTeams(c.Request.Context(), c.Query("team_id"), c.Query("group_ids"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetSpaces(c *gin.Context) {
	raw, err := h.Click.GetSpaces(c.Request.Context(), c.Param("team_id"), queryBool(c, "archived"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetSpace(c *gin.Context) {
	raw, err := h.Click.GetSpace(c.Request.Context(), c.Param("space_id"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetFolders(c *gin.Context) {
	raw, err := h.Click.GetFolders(c.Request.Context(), c.Param("space_id"), queryBool(c, "archived"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetFolder(c *gin.Context) {
	raw, err := h.Click.GetFolder(c.Request.Context(), c.Param("folder_id"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetLists(c *gin.Context) {
	raw, err := h.Click.GetLists(c.Request.Context(), c.Param("folder_id"), queryBool(c, "archived"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetList(c *gin.Context) {
	raw, err := h.Click.GetList(c.Request.Context(), c.Param("list_id"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetFolderlessLists(c *gin.Context) {
	raw, err := h.Click.GetFolderlessLists(c.Request.Context(), c.Param("space_id"), queryBool(c, "archived"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

// tasksQuery maps the passthrough query parameters onto the typed filter
// set. Array filters arrive as repeated query keys.
func tasksQuery(c *gin.Context) clickup.TasksQuery {
	q := clickup.TasksQuery{
		Archived:                   queryBool(c, "archived"),
		IncludeMarkdownDescription: queryBool(c, "include_markdown_description"),
		OrderBy:                    c.Query("order_by"),
		Reverse:                    queryBool(c, "reverse"),
		Subtasks:                   queryBool(c, "subtasks"),
		IncludeClosed:              queryBool(c, "include_closed"),
		Statuses:                   c.QueryArray("statuses"),
		Assignees:                  c.QueryArray("assignees"),
		Tags:                       c.QueryArray("tags"),
	}
	if page, ok := queryInt64(c, "page"); ok {
		p := int(page)
		q.Page = &p
	}
	for key, dst := range map[string]*int64{
		"due_date_gt":     &q.DueDateGT,
		"due_date_lt":     &q.DueDateLT,
		"date_created_gt": &q.DateCreatedGT,
		"date_created_lt": &q.DateCreatedLT,
		"date_updated_gt": &q.DateUpdatedGT,
		"date_updated_lt": &q.DateUpdatedLT,
		"date_done_gt":    &q.DateDoneGT,
		"date_done_lt":    &q.DateDoneLT,
	} {
		if v, ok := queryInt64(c, key); ok {
			*dst = v
		}
	}
	return q
}

func (h *ClickUpHandler) GetTasks(c *gin.Context) {
	raw, err := h.Click.GetTasks(c.Request.Context(), c.Param("list_id"), tasksQuery(c), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetTeamTasks(c *gin.Context) {
	raw, err := h.Click.GetTeamTasks(c.Request.Context(), c.Param("team_id"), tasksQuery(c), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetTask(c *gin.Context) {
	raw, err := h.Click.GetTask(c.Request.Context(), c.Param("task_id"), queryBool(c, "include_markdown_description"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetUser(c *gin.Context) {
	raw, err := h.Click.GetUser(c.Request.Context(), c.Param("team_id"), c.Param("user_id"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetTimeEntries(c *gin.Context) {
	query := clickup.TimeEntriesQuery{
		Assignee:             c.QueryArray("assignee"),
		IncludeTaskTags:      queryBool(c, "include_task_tags"),
		IncludeLocationNames: queryBool(c, "include_location_names"),
		SpaceID:              c.Query("space_id"),
		FolderID:             c.Query("folder_id"),
		ListID:               c.Query("list_id"),
		TaskID:               c.Query("task_id"),
	}
	if v, ok := queryInt64(c, "start_date"); ok {
		query.StartDate = v
	}
	if v, ok := queryInt64(c, "end_date"); ok {
		query.EndDate = v
	}

	raw, err := h.Click.GetTimeEntries(c.Request.Context(), c.Param("team_id"), query, tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetTaskComments(c *gin.Context) {
	raw, err := h.Click.GetTaskComments(c.Request.Context(), c.Param("task_id"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetListComments(c *gin.Context) {
	raw, err := h.Click.GetListComments(c.Request.Context(), c.Param("list_id"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetChatViewComments(c *gin.Context) {
	raw, err := h.Click.GetChatViewComments(c.Request.Context(), c.Param("view_id"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetCustomTaskTypes(c *gin.Context) {
	raw, err := h.Click.GetCustomTaskTypes(c.Request.Context(), c.Param("team_id"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) GetAccessibleCustomFields(c *gin.Context) {
	raw, err := h.Click.GetAccessibleCustomFields(c.Request.Context(), c.Param("list_id"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}
