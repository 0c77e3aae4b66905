package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/westal/clickup-bridge/internal/clickup"
)

// AdditionalHandler exposes the aggregation reports and the compound write
// operations.
type AdditionalHandler struct {
	Click *clickup.Client
}

func NewAdditionalHandler(click *clickup.Client) *AdditionalHandler {
	return &AdditionalHandler{Click: click}
}

type worktimeRow struct {
	Username   string `json:"username"`
	DurationMs int64  `json:"duration_ms"`
	Duration   string `json:"duration"`
}

// resolveTeamIDs returns the explicit team_id when the query carries one,
// else falls back to every workspace the token is authorized for, so the
// aggregations can run account-wide without the caller knowing its team id.
func (h *AdditionalHandler) resolveTeamIDs(c *gin.Context) ([]int64, bool) {
	if id, ok := queryInt64(c, "team_id"); ok {
		return []int64{id}, true
	}
	raw, err := h.Click.WorkspaceIDs(c.Request.Context(), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	ids := make([]int64, 0, len(raw))
	for _, s := range raw {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			ids = append(ids, v)
		}
	}
	if len(ids) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no authorized workspaces for this token"})
		return nil, false
	}
	return ids, true
}

func (h *AdditionalHandler) UserWorktime(c *gin.Context) {
	teamIDs, ok := h.resolveTeamIDs(c)
	if !ok {
		return
	}
	req := clickup.WorktimeRequest{
		Assignees:    c.QueryArray("assignee"),
		OnlyBillable: queryBool(c, "only_billable"),
	}
	if v, ok := queryInt64(c, "start_date"); ok {
		req.StartDate = v
	}
	if v, ok := queryInt64(c, "end_date"); ok {
		req.EndDate = v
	}

	total := clickup.WorktimeSummary{}
	for _, teamID := range teamIDs {
		req.TeamID = teamID
		summary, err := h.Click.UserWorktime(c.Request.Context(), req, tokenOverride(c)...)
		if err != nil {
			writeError(c, err)
			return
		}
		for username, ms := range summary {
			total[username] += ms
		}
	}

	rows := make([]worktimeRow, 0, len(total))
	for username, ms := range total {
		rows = append(rows, worktimeRow{Username: username, DurationMs: ms, Duration: clickup.FormatDuration(ms)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Username < rows[j].Username })
	c.JSON(http.StatusOK, gin.H{"worktime": rows})
}

func (h *AdditionalHandler) UserTasks(c *gin.Context) {
	teamIDs, ok := h.resolveTeamIDs(c)
	if !ok {
		return
	}
	req := clickup.TasksRequest{
		Assignees: c.QueryArray("assignee"),
		DateField: c.Query("date_field"),
	}
	if v, ok := queryInt64(c, "start_date"); ok {
		req.StartDate = v
	}
	if v, ok := queryInt64(c, "end_date"); ok {
		req.EndDate = v
	}

	total := clickup.TaskSummary{}
	for _, teamID := range teamIDs {
		req.TeamID = teamID
		summary, err := h.Click.UserTasks(c.Request.Context(), req, tokenOverride(c)...)
		if err != nil {
			writeError(c, err)
			return
		}
		for username, tasks := range summary {
			total[username] = append(total[username], tasks...)
		}
	}
	c.JSON(http.StatusOK, gin.H{"tasks": total})
}

type checklistItemsBody struct {
	TaskID        string                  `json:"task_id"`
	ChecklistID   string                  `json:"checklist_id"`
	ChecklistName string                  `json:"checklist_name"`
	Items         []clickup.ChecklistItem `json:"checklist_items"`
}

func (h *AdditionalHandler) CreateChecklistItems(c *gin.Context) {
	var body checklistItemsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := clickup.ChecklistItemsRequest{
		TaskID:        body.TaskID,
		ChecklistID:   body.ChecklistID,
		ChecklistName: body.ChecklistName,
		Items:         body.Items,
	}

	result, err := h.Click.CreateChecklistItems(c.Request.Context(), req, tokenOverride(c)...)
	if err != nil {
		writePartial(c, err, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

type taskCompositeBody struct {
	ListID     string                    `json:"list_id"`
	Task       clickup.CreateTaskRequest `json:"task"`
	Checklists []clickup.ChecklistSpec   `json:"checklists"`
}

func (h *AdditionalHandler) CreateTaskComprehensive(c *gin.Context) {
	var body taskCompositeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := clickup.TaskCompositeRequest{
		ListID:     body.ListID,
		Task:       body.Task,
		Checklists: body.Checklists,
	}

	result, err := h.Click.CreateTaskWithChecklistAndItems(c.Request.Context(), req, tokenOverride(c)...)
	if err != nil {
		writePartial(c, err, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// writePartial reports a saga failure. The error keeps its usual status
// mapping; when some steps already succeeded, their outcome rides along so
// the caller can see what was created before the chain stopped.
func writePartial(c *gin.Context, err error, partial any) {
	status, body := errorResponse(err)
	if !isNil(partial) {
		body["partial"] = partial
	}
	c.JSON(status, body)
}

func isNil(v any) bool {
	switch p := v.(type) {
	case *clickup.ChecklistResult:
		return p == nil
	case *clickup.TaskCompositeResult:
		return p == nil
	default:
		return v == nil
	}
}
