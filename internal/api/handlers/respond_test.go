package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/westal/clickup-bridge/internal/clickup"
)

func TestErrorResponseStatusPerKind(t *testing.T) {
	cases := []struct {
		kind   clickup.ErrorKind
		status int
	}{
		{clickup.KindAuth, http.StatusUnauthorized},
		{clickup.KindValidation, http.StatusBadRequest},
		{clickup.KindNotFound, http.StatusNotFound},
		{clickup.KindPlanRestriction, http.StatusForbidden},
		{clickup.KindServer, http.StatusBadGateway},
		{clickup.KindTimeout, http.StatusGatewayTimeout},
		{clickup.KindConfiguration, http.StatusInternalServerError},
		{clickup.KindUnknownOperation, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			status, _ := errorResponse(&clickup.Error{Kind: tc.kind})
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestErrorResponseUnknownKindKeepsUpstreamStatus(t *testing.T) {
	status, body := errorResponse(&clickup.Error{Kind: clickup.KindUnknown, Status: 418})
	assert.Equal(t, 418, status)
	assert.Equal(t, 418, body["upstream_status"])

	// Without an upstream status there is nothing better than a 500.
	status, _ = errorResponse(&clickup.Error{Kind: clickup.KindUnknown})
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestErrorResponsePlainError(t *testing.T) {
	status, body := errorResponse(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "boom", body["error"])
}
