package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/westal/clickup-bridge/internal/clickup"
)

// rawBody reads the request body as-is so edit endpoints pass arbitrary
// upstream fields through without re-modelling them here.
func rawBody(c *gin.Context) (json.RawMessage, bool) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return nil, false
	}
	if len(data) == 0 {
		data = []byte("{}")
	}
	return data, true
}

func (h *ClickUpHandler) CreateTask(c *gin.Context) {
	var req clickup.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	raw, err := h.Click.CreateTask(c.Request.Context(), c.Param("list_id"), req, tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, raw)
}

func (h *ClickUpHandler) EditTask(c *gin.Context) {
	body, ok := rawBody(c)
	if !ok {
		return
	}
	raw, err := h.Click.EditTask(c.Request.Context(), c.Param("task_id"), body, tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) CreateChecklist(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	raw, err := h.Click.CreateChecklist(c.Request.Context(), c.Param("task_id"), req.Name, tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, raw)
}

func (h *ClickUpHandler) EditChecklist(c *gin.Context) {
	body, ok := rawBody(c)
	if !ok {
		return
	}
	raw, err := h.Click.EditChecklist(c.Request.Context(), c.Param("checklist_id"), body, tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) CreateChecklistItem(c *gin.Context) {
	var item clickup.ChecklistItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	raw, err := h.Click.CreateChecklistItem(c.Request.Context(), c.Param("checklist_id"), item, tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, raw)
}

func (h *ClickUpHandler) EditChecklistItem(c *gin.Context) {
	body, ok := rawBody(c)
	if !ok {
		return
	}
	raw, err := h.Click.EditChecklistItem(c.Request.Context(),
		c.Param("checklist_id"), c.Param("checklist_item_id"), body, tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) CreateTaskComment(c *gin.Context) {
	body, ok := rawBody(c)
	if !ok {
		return
	}
	raw, err := h.Click.CreateTaskComment(c.Request.Context(), c.Param("task_id"), body, tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, raw)
}

func (h *ClickUpHandler) CreateListComment(c *gin.Context) {
	body, ok := rawBody(c)
	if !ok {
		return
	}
	raw, err := h.Click.CreateListComment(c.Request.Context(), c.Param("list_id"), body, tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, raw)
}

func (h *ClickUpHandler) CreateChatViewComment(c *gin.Context) {
	body, ok := rawBody(c)
	if !ok {
		return
	}
	raw, err := h.Click.CreateChatViewComment(c.Request.Context(), c.Param("view_id"), body, tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, raw)
}

func (h *ClickUpHandler) UpdateComment(c *gin.Context) {
	body, ok := rawBody(c)
	if !ok {
		return
	}
	raw, err := h.Click.UpdateComment(c.Request.Context(), c.Param("comment_id"), body, tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) AddTaskLink(c *gin.Context) {
	raw, err := h.Click.AddTaskLink(c.Request.Context(), c.Param("task_id"), c.Param("links_to"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) AddTaskDependency(c *gin.Context) {
	raw, err := h.Click.AddTaskDependency(c.Request.Context(),
		c.Param("task_id"), c.Query("depends_on"), c.Query("dependency_of"), tokenOverride(c)...)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, raw)
}

func (h *ClickUpHandler) DeleteComment(c *gin.Context) {
	if err := h.Click.DeleteComment(c.Request.Context(), c.Param("comment_id"), tokenOverride(c)...); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

func (h *ClickUpHandler) RemoveTaskFromList(c *gin.Context) {
	if err := h.Click.RemoveTaskFromList(c.Request.Context(), c.Param("list_id"), c.Param("task_id"), tokenOverride(c)...); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task removed from list"})
}

func (h *ClickUpHandler) DeleteTask(c *gin.Context) {
	if err := h.Click.DeleteTask(c.Request.Context(), c.Param("task_id"), tokenOverride(c)...); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

func (h *ClickUpHandler) DeleteChecklist(c *gin.Context) {
	if err := h.Click.DeleteChecklist(c.Request.Context(), c.Param("checklist_id"), tokenOverride(c)...); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "checklist deleted"})
}

func (h *ClickUpHandler) DeleteChecklistItem(c *gin.Context) {
	if err := h.Click.DeleteChecklistItem(c.Request.Context(),
		c.Param("checklist_id"), c.Param("checklist_item_id"), tokenOverride(c)...); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "checklist item deleted"})
}

func (h *ClickUpHandler) DeleteTaskLink(c *gin.Context) {
	if err := h.Click.DeleteTaskLink(c.Request.Context(), c.Param("task_id"), c.Param("links_to"), tokenOverride(c)...); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task link deleted"})
}

func (h *ClickUpHandler) DeleteTaskDependency(c *gin.Context) {
	if err := h.Click.DeleteTaskDependency(c.Request.Context(),
		c.Param("task_id"), c.Query("depends_on"), c.Query("dependency_of"), tokenOverride(c)...); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task dependency deleted"})
}
