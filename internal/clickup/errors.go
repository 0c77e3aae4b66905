package clickup

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorKind buckets ClickUp's ECODE vocabulary into a stable local taxonomy.
type ErrorKind string

const (
	// KindAuth covers missing or insufficient tokens. Never retried.
	KindAuth ErrorKind = "auth"
	// KindValidation covers malformed input, detected either locally before
	// the network call or by the server.
	KindValidation ErrorKind = "validation"
	// KindNotFound covers absent entities or routes.
	KindNotFound ErrorKind = "not_found"
	// KindServer covers upstream failures. Callers may retry idempotent GETs
	// with backoff; the client itself never retries.
	KindServer ErrorKind = "server"
	// KindPlanRestriction covers features unavailable on the workspace plan.
	KindPlanRestriction ErrorKind = "plan_restriction"
	// KindConfiguration marks programmer errors (empty token, unresolved
	// path placeholder) rather than bad user input.
	KindConfiguration ErrorKind = "configuration"
	// KindUnknownOperation marks a catalog lookup for an operation name that
	// does not exist.
	KindUnknownOperation ErrorKind = "unknown_operation"
	// KindTimeout marks caller-initiated cancellation or a network deadline.
	KindTimeout ErrorKind = "timeout"
	// KindUnknown is the safe default for unrecognized ecodes or unparsable
	// error bodies. Raw status and body are preserved for diagnostics.
	KindUnknown ErrorKind = "unknown"
)

// Error is the classified form of a failed ClickUp call.
type Error struct {
	Kind    ErrorKind
	Op      string // logical operation name, empty for construction errors
	ECode   string // ClickUp ECODE, preserved verbatim when present
	Status  int    // HTTP status, 0 for errors raised before the network call
	Message string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("clickup: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	if e.ECode != "" {
		fmt.Fprintf(&b, " (%s)", e.ECode)
	}
	if e.Status != 0 {
		fmt.Fprintf(&b, " [http %d]", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Retryable reports whether a retry with backoff is safe. Only upstream
// failures on idempotent reads qualify; the client never retries on its own.
func (e *Error) Retryable(method string) bool {
	return e.Kind == KindServer && method == "GET"
}

// ecodeKinds maps the ClickUp error-code vocabulary to local kinds. The
// upstream table has no formal source of truth and grows between API
// revisions, so anything unlisted classifies as KindUnknown rather than
// guessing. The misspelled OUATH_066 is returned by ClickUp as-is.
var ecodeKinds = map[string]ErrorKind{
	"OAUTH_017":         KindAuth,
	"OAUTH_019":         KindAuth,
	"OAUTH_023":         KindAuth,
	"OAUTH_027":         KindAuth,
	"OAUTH_057":         KindAuth,
	"OAUTH_061":         KindAuth,
	"TIMEENTRYM_006":    KindAuth,
	"TIMEENTRY_059":     KindAuth,
	"SHARD_001":         KindValidation,
	"ITEM_155":          KindValidation,
	"ITEM_156":          KindValidation,
	"OAUTH_040":         KindValidation,
	"PUBAPITASK_008":    KindValidation,
	"PUBAPITASK_009":    KindValidation,
	"TIMEENTRY_007":     KindValidation,
	"TIMEENTRY_062":     KindValidation,
	"TIMEENTRY_065":     KindValidation,
	"ACCESS_083":        KindNotFound,
	"ACCESS_190":        KindNotFound,
	"APP_001":           KindNotFound,
	"OUATH_066":         KindNotFound,
	"ITEMV2_003":        KindServer,
	"CHECK_012":         KindServer,
	"COMM_003":          KindServer,
	"GROUP_HELPERS_001": KindServer,
	"22P02":             KindServer,
	"OAUTH_095":         KindServer,
	"OAUTH_097":         KindServer,
	"TEAM_110":          KindPlanRestriction,
}

// classifyResponse maps a non-2xx ClickUp response body to an *Error. ClickUp
// error bodies carry {"err": "...", "ECODE": "..."}; anything else degrades
// to KindUnknown with the raw body kept as the message.
func classifyResponse(op string, status int, body []byte) *Error {
	var payload struct {
		Err   string `json:"err"`
		ECode string `json:"ECODE"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.ECode == "" {
		return &Error{
			Kind:    KindUnknown,
			Op:      op,
			Status:  status,
			Message: strings.TrimSpace(string(body)),
		}
	}
	kind, ok := ecodeKinds[payload.ECode]
	if !ok {
		kind = KindUnknown
	}
	return &Error{
		Kind:    kind,
		Op:      op,
		ECode:   payload.ECode,
		Status:  status,
		Message: payload.Err,
	}
}

func validationError(op, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: fmt.Sprintf(format, args...)}
}

func configurationError(op, format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Op: op, Message: fmt.Sprintf(format, args...)}
}
