package clickup

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWorktimeSumsPerUser(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Two entries for alice, deliberately overlapping in time. Both
		// count: the report mirrors what ClickUp recorded, it does not
		// deduplicate. Durations arrive as strings.
		w.Write([]byte(`{"data":[
			{"id":"1","user":{"id":11,"username":"alice"},"billable":true,"start":"1000","end":"4600000","duration":"3600000"},
			{"id":"2","user":{"id":11,"username":"alice"},"billable":false,"start":"2000","end":"1802000","duration":"1800000"},
			{"id":"3","user":{"id":22,"username":"bob"},"billable":true,"start":"1000","end":"901000","duration":"900000"}
		]}`))
	})

	summary, err := client.UserWorktime(context.Background(), WorktimeRequest{
		TeamID:    123,
		StartDate: 0,
		EndDate:   1700000000000,
	})
	require.NoError(t, err)

	assert.Equal(t, WorktimeSummary{
		"alice": 5400000,
		"bob":   900000,
	}, summary)
}

func TestUserWorktimeEmptyRangeIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	summary, err := client.UserWorktime(context.Background(), WorktimeRequest{TeamID: 123})
	require.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Empty(t, summary)
}

func TestUserWorktimeOnlyBillable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":"1","user":{"id":11,"username":"alice"},"billable":true,"duration":"3600000"},
			{"id":"2","user":{"id":11,"username":"alice"},"billable":false,"duration":"1800000"}
		]}`))
	})

	summary, err := client.UserWorktime(context.Background(), WorktimeRequest{
		TeamID:       123,
		OnlyBillable: true,
	})
	require.NoError(t, err)
	assert.Equal(t, WorktimeSummary{"alice": 3600000}, summary)
}

func TestUserWorktimeAssigneeFilter(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"data":[
			{"id":"1","user":{"id":11,"username":"alice"},"billable":true,"duration":"3600000"},
			{"id":"2","user":{"id":22,"username":"bob"},"billable":true,"duration":"900000"}
		]}`))
	})

	// One real assignee, padded with an empty placeholder to satisfy the
	// two-element rule. The placeholder goes out on the wire but matches no
	// record locally.
	summary, err := client.UserWorktime(context.Background(), WorktimeRequest{
		TeamID:    123,
		Assignees: []string{"11", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, WorktimeSummary{"alice": 3600000}, summary)
	assert.Contains(t, gotQuery, "assignee=11")
	assert.Contains(t, gotQuery, "assignee=&")
}

func TestUserWorktimeRejectsSingleAssignee(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := client.UserWorktime(context.Background(), WorktimeRequest{
		TeamID:    123,
		Assignees: []string{"11"},
	})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Zero(t, *calls)
}

func TestUserWorktimeRejectsInvertedRange(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := client.UserWorktime(context.Background(), WorktimeRequest{
		TeamID:    123,
		StartDate: 1700000000000,
		EndDate:   1600000000000,
	})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Zero(t, *calls)
}

func TestUserTasksGroupsPerAssignee(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// One task shared between alice and bob: it shows up once under
		// each username.
		w.Write([]byte(`{"tasks":[
			{"id":"t1","name":"shared","assignees":[
				{"id":11,"username":"alice"},{"id":22,"username":"bob"}]},
			{"id":"t2","name":"solo","assignees":[{"id":11,"username":"alice"}]}
		],"last_page":true}`))
	})

	summary, err := client.UserTasks(context.Background(), TasksRequest{TeamID: 123})
	require.NoError(t, err)

	require.Len(t, summary["alice"], 2)
	require.Len(t, summary["bob"], 1)
	assert.Equal(t, "shared", summary["bob"][0].Name)
}

func TestUserTasksDueDateField(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"tasks":[],"last_page":true}`))
	})

	_, err := client.UserTasks(context.Background(), TasksRequest{
		TeamID:    123,
		StartDate: 1600000000000,
		EndDate:   1700000000000,
		DateField: "due",
	})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "due_date_gt=1600000000000")
	assert.Contains(t, gotQuery, "due_date_lt=1700000000000")
	assert.NotContains(t, gotQuery, "date_created_gt")
}

func TestUserTasksRejectsBadDateField(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tasks":[]}`))
	})

	_, err := client.UserTasks(context.Background(), TasksRequest{
		TeamID:    123,
		DateField: "updated",
	})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Zero(t, *calls)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00:00", FormatDuration(0))
	assert.Equal(t, "0:00:01", FormatDuration(1000))
	assert.Equal(t, "1:30:00", FormatDuration(5400000))
	assert.Equal(t, "27:46:39", FormatDuration(99999000))
	// Running timers report negative durations.
	assert.Equal(t, "-0:15:00", FormatDuration(-900000))
}
