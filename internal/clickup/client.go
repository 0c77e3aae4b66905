package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultBaseURL is the official ClickUp v2 API root.
const DefaultBaseURL = "https://app.clickup.com/api/v2"

// Client issues typed requests against the ClickUp API. The credential it
// holds is read-only for the client's lifetime, so concurrent calls are safe
// without locking.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     hclog.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests pointed at a mock
// server. A trailing slash is trimmed.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient substitutes the pooled HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a structured logger. Defaults to a null logger.
func WithLogger(l hclog.Logger) Option {
	return func(c *Client) { c.log = l.Named("clickup") }
}

// New builds a Client around a bearer token. An empty token is a
// configuration error: a credential context cannot exist without one.
func New(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, configurationError("", "clickup token must not be empty")
	}
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: 20 * time.Second},
		log:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CallOption adjusts a single call.
type CallOption func(*callSettings)

type callSettings struct {
	token string
}

// WithToken overrides the client token for exactly one call. The override is
// not persisted. Empty strings are ignored and fall back to the default.
func WithToken(token string) CallOption {
	return func(cs *callSettings) { cs.token = token }
}

// resolveToken returns the per-call override when set, else the default.
func (c *Client) resolveToken(copts []CallOption) string {
	var cs callSettings
	for _, opt := range copts {
		opt(&cs)
	}
	if strings.TrimSpace(cs.token) != "" {
		return cs.token
	}
	return c.token
}

// call performs exactly one network round trip for the named operation: no
// implicit retry, first error returned classified. When out is non-nil the
// 2xx payload decodes into it; pass *json.RawMessage for pass-through.
func (c *Client) call(ctx context.Context, op string, pathVals map[string]string, params Params, body any, out any, copts ...CallOption) error {
	ep, cerr := lookupEndpoint(op)
	if cerr != nil {
		return cerr
	}
	if cerr := validateParams(op, ep, params); cerr != nil {
		return cerr
	}
	path, cerr := expandPath(op, ep.Path, pathVals)
	if cerr != nil {
		return cerr
	}

	endpoint := c.baseURL + "/" + path
	if q := encodeQuery(params); q != "" {
		endpoint += "?" + q
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return configurationError(op, "encode request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, endpoint, reader)
	if err != nil {
		return configurationError(op, "build request: %v", err)
	}
	req.Header.Set("Authorization", c.resolveToken(copts))
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("calling clickup", "op", op, "method", ep.Method, "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(op, ctx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindUnknown, Op: op, Status: resp.StatusCode, Message: "read response: " + err.Error()}
	}
	if resp.StatusCode >= 400 {
		apiErr := classifyResponse(op, resp.StatusCode, respBody)
		c.log.Debug("clickup error", "op", op, "status", resp.StatusCode, "kind", apiErr.Kind, "ecode", apiErr.ECode)
		return apiErr
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &Error{Kind: KindUnknown, Op: op, Status: resp.StatusCode, Message: "decode response: " + err.Error()}
		}
	}
	return nil
}

// transportError classifies failures that never produced a response.
// Cancellation and deadlines surface as KindTimeout per the partial-failure
// contract; everything else stays unknown.
func transportError(op string, ctx context.Context, err error) *Error {
	if ctx.Err() != nil {
		return &Error{Kind: KindTimeout, Op: op, Message: ctx.Err().Error()}
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return &Error{Kind: KindTimeout, Op: op, Message: err.Error()}
	}
	return &Error{Kind: KindUnknown, Op: op, Message: err.Error()}
}

// raw is a pass-through helper for the plain endpoint wrappers.
func (c *Client) raw(ctx context.Context, op string, pathVals map[string]string, params Params, body any, copts ...CallOption) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, op, pathVals, params, body, &out, copts...); err != nil {
		return nil, err
	}
	return out, nil
}
