package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/westal/clickup-bridge/internal/clickup"
)

// writeJSON forwards a raw ClickUp payload untouched.
func writeJSON(c *gin.Context, status int, raw []byte) {
	if len(raw) == 0 {
		c.Status(status)
		return
	}
	c.Data(status, "application/json", raw)
}

// writeError maps the local error taxonomy onto gateway status codes. The
// original ecode and upstream status ride along for diagnostics.
func writeError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	c.JSON(status, body)
}

// errorResponse builds the status and body for an error without committing
// them, so saga handlers can extend the body with partial results.
func errorResponse(err error) (int, gin.H) {
	var apiErr *clickup.Error
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError, gin.H{"error": err.Error()}
	}

	status := http.StatusInternalServerError
	switch apiErr.Kind {
	case clickup.KindAuth:
		status = http.StatusUnauthorized
	case clickup.KindValidation:
		status = http.StatusBadRequest
	case clickup.KindNotFound:
		status = http.StatusNotFound
	case clickup.KindPlanRestriction:
		status = http.StatusForbidden
	case clickup.KindServer:
		status = http.StatusBadGateway
	case clickup.KindTimeout:
		status = http.StatusGatewayTimeout
	case clickup.KindConfiguration, clickup.KindUnknownOperation:
		// Programmer errors on the gateway side, not caller input.
		status = http.StatusInternalServerError
	case clickup.KindUnknown:
		if apiErr.Status >= 400 {
			status = apiErr.Status
		}
	}

	body := gin.H{"error": apiErr.Message, "kind": apiErr.Kind}
	if apiErr.ECode != "" {
		body["ecode"] = apiErr.ECode
	}
	if apiErr.Status != 0 {
		body["upstream_status"] = apiErr.Status
	}
	return status, body
}

// tokenOverride turns the optional per-call token query parameter into call
// options. An absent parameter means the client default applies.
func tokenOverride(c *gin.Context) []clickup.CallOption {
	if token := c.Query("token"); token != "" {
		return []clickup.CallOption{clickup.WithToken(token)}
	}
	return nil
}

func queryBool(c *gin.Context, key string) bool {
	v, _ := strconv.ParseBool(c.Query(key))
	return v
}

func queryInt64(c *gin.Context, key string) (int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
