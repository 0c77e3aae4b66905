package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/westal/clickup-bridge/internal/clickup"
)

func newCompoundRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	click, err := clickup.New("pk_default", clickup.WithBaseURL(srv.URL))
	require.NoError(t, err)

	ah := NewAdditionalHandler(click)
	r := gin.New()
	r.POST("/additional/checklist_items", ah.CreateChecklistItems)
	r.POST("/additional/task_comprehensive", ah.CreateTaskComprehensive)
	r.GET("/additional/user_tasks", ah.UserTasks)
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// compoundUpstream mimics the checklist write endpoints; inserts past
// failAfter items fail with a server error.
func compoundUpstream(failAfter int) http.HandlerFunc {
	inserts := 0
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/checklist") && r.Method == "POST":
			w.Write([]byte(`{"checklist":{"id":"cl_1","name":"QA","items":[]}}`))
		case strings.Contains(r.URL.Path, "/checklist_item"):
			inserts++
			if failAfter >= 0 && inserts > failAfter {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"err":"Internal Server Error","ECODE":"CHECK_012"}`))
				return
			}
			var item struct {
				Name string `json:"name"`
			}
			json.NewDecoder(r.Body).Decode(&item)
			fmt.Fprintf(w, `{"checklist":{"id":"cl_1","name":"QA","items":[{"id":"it_%d","name":%q}]}}`, inserts, item.Name)
		case strings.HasSuffix(r.URL.Path, "/task") && r.Method == "POST":
			w.Write([]byte(`{"id":"task_9"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"err":"Route not found","ECODE":"APP_001"}`))
		}
	}
}

func TestChecklistItemsEndpointCreates(t *testing.T) {
	r := newCompoundRouter(t, compoundUpstream(-1))

	w := post(r, "/additional/checklist_items", `{
		"task_id": "task_9",
		"checklist_name": "QA",
		"checklist_items": [{"name":"review"},{"name":"deploy"}]
	}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"checklist_id":"cl_1"`)
}

func TestChecklistItemsEndpointRejectsBothIDs(t *testing.T) {
	r := newCompoundRouter(t, compoundUpstream(-1))

	w := post(r, "/additional/checklist_items", `{
		"task_id": "task_9",
		"checklist_id": "cl_1",
		"checklist_items": [{"name":"review"}]
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChecklistItemsEndpointReportsPartialResult(t *testing.T) {
	r := newCompoundRouter(t, compoundUpstream(1))

	w := post(r, "/additional/checklist_items", `{
		"task_id": "task_9",
		"checklist_name": "QA",
		"checklist_items": [{"name":"one"},{"name":"two"},{"name":"three"}]
	}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body struct {
		ECode   string `json:"ecode"`
		Partial struct {
			ChecklistID string   `json:"checklist_id"`
			ItemIDs     []string `json:"item_ids"`
		} `json:"partial"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "CHECK_012", body.ECode)
	assert.Equal(t, "cl_1", body.Partial.ChecklistID)
	assert.Equal(t, []string{"it_1"}, body.Partial.ItemIDs)
}

func TestTaskComprehensiveEndpointCreates(t *testing.T) {
	r := newCompoundRouter(t, compoundUpstream(-1))

	w := post(r, "/additional/task_comprehensive", `{
		"list_id": "list_1",
		"task": {"name": "release"},
		"checklists": [{"name":"QA","items":[{"name":"review"}]}]
	}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"task_id":"task_9"`)
	assert.Contains(t, w.Body.String(), `"checklist_id":"cl_1"`)
}

func TestTaskComprehensiveEndpointRejectsMissingName(t *testing.T) {
	r := newCompoundRouter(t, compoundUpstream(-1))

	w := post(r, "/additional/task_comprehensive", `{"list_id":"list_1","task":{}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserTasksEndpointGroups(t *testing.T) {
	r := newCompoundRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"tasks":[
			{"id":"t1","name":"shared","assignees":[
				{"id":11,"username":"alice"},{"id":22,"username":"bob"}]}
		],"last_page":true}`))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/additional/user_tasks?team_id=123", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alice"`)
	assert.Contains(t, w.Body.String(), `"bob"`)
}
