package clickup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateParamsMissingRequired(t *testing.T) {
	ep := Endpoint{Method: "GET", Path: "x", Required: []string{"start_date"}}

	err := validateParams("op", ep, Params{})
	require.NotNil(t, err)
	assert.Equal(t, KindValidation, err.Kind)
	assert.Contains(t, err.Message, "start_date")
}

func TestValidateParamsRejectsUnknown(t *testing.T) {
	ep := Endpoint{Method: "GET", Path: "x", Optional: []string{"archived"}}

	err := validateParams("op", ep, Params{"bogus": true})
	require.NotNil(t, err)
	assert.Equal(t, KindValidation, err.Kind)
	assert.Contains(t, err.Message, "bogus")
}

func TestValidateParamsArrayRule(t *testing.T) {
	ep := Endpoint{
		Method:      "GET",
		Path:        "x",
		Optional:    []string{"assignee"},
		ArrayParams: []string{"assignee"},
	}

	// A single-element filter array is rejected before any network call.
	err := validateParams("op", ep, Params{"assignee": []string{"42"}})
	require.NotNil(t, err)
	assert.Equal(t, KindValidation, err.Kind)

	// The caller pads with an empty placeholder to satisfy the rule.
	assert.Nil(t, validateParams("op", ep, Params{"assignee": []string{"42", ""}}))

	// A scalar where an array is expected is also rejected.
	err = validateParams("op", ep, Params{"assignee": "42"})
	require.NotNil(t, err)
	assert.Equal(t, KindValidation, err.Kind)

	// Absent is fine.
	assert.Nil(t, validateParams("op", ep, Params{}))
}

func TestValidateParamsHierarchyExclusive(t *testing.T) {
	ep := Endpoint{
		Method:   "GET",
		Path:     "x",
		Optional: []string{"space_id", "folder_id", "list_id", "task_id"},
	}

	assert.Nil(t, validateParams("op", ep, Params{"list_id": "7"}))

	err := validateParams("op", ep, Params{"space_id": "3", "folder_id": "5"})
	require.NotNil(t, err)
	assert.Equal(t, KindValidation, err.Kind)
	assert.Contains(t, err.Message, "hierarchy")

	err = validateParams("op", ep, Params{"list_id": "7", "task_id": "abc"})
	require.NotNil(t, err)
	assert.Equal(t, KindValidation, err.Kind)
}

func TestExpandPath(t *testing.T) {
	path, err := expandPath("op", "team/{team_id}/space", map[string]string{"team_id": "123"})
	require.Nil(t, err)
	assert.Equal(t, "team/123/space", path)
}

func TestExpandPathEscapesValues(t *testing.T) {
	path, err := expandPath("op", "task/{task_id}", map[string]string{"task_id": "a/b c"})
	require.Nil(t, err)
	assert.Equal(t, "task/a%2Fb%20c", path)
}

func TestExpandPathUnresolvedPlaceholder(t *testing.T) {
	_, err := expandPath("op", "team/{team_id}/space", nil)
	require.NotNil(t, err)
	assert.Equal(t, KindConfiguration, err.Kind)
	assert.Contains(t, err.Message, "{team_id}")
}

func TestExpandPathEmptyValue(t *testing.T) {
	_, err := expandPath("op", "task/{task_id}", map[string]string{"task_id": ""})
	require.NotNil(t, err)
	assert.Equal(t, KindConfiguration, err.Kind)
}

func TestEncodeQuery(t *testing.T) {
	q := encodeQuery(Params{
		"archived":   true,
		"page":       3,
		"start_date": int64(1700000000000),
		"name":       "",
	})
	// Empty scalar strings are dropped; keys come out sorted.
	assert.Equal(t, "archived=true&page=3&start_date=1700000000000", q)
}

func TestEncodeQueryRepeatsArrayKeys(t *testing.T) {
	q := encodeQuery(Params{"assignee": []string{"42", ""}})
	// Padding placeholders stay on the wire; dropping them would recreate
	// the one-element array ClickUp rejects.
	assert.Equal(t, "assignee=42&assignee=", q)
}
