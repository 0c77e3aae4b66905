package clickup

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Params is the query-parameter set for one call. Values may be strings,
// numbers, bools, or slices of those; nil values are dropped.
type Params map[string]any

// hierarchyParams may appear at most once per request. ClickUp rejects
// requests that scope a call to more than one hierarchy level at a time.
var hierarchyParams = []string{"space_id", "folder_id", "list_id", "task_id"}

// validateParams runs the local pre-flight checks so that input the server
// would reject anyway never costs a round trip.
func validateParams(op string, ep Endpoint, params Params) *Error {
	for _, name := range ep.Required {
		if !present(params[name]) {
			return validationError(op, "missing required parameter %q", name)
		}
	}

	allowed := make(map[string]bool, len(ep.Required)+len(ep.Optional))
	for _, name := range ep.Required {
		allowed[name] = true
	}
	for _, name := range ep.Optional {
		allowed[name] = true
	}
	for name := range params {
		if !allowed[name] {
			return validationError(op, "parameter %q not accepted by this operation", name)
		}
	}

	for _, name := range ep.ArrayParams {
		v, ok := params[name]
		if !ok || v == nil {
			continue
		}
		n, isSlice := sliceLen(v)
		if !isSlice {
			return validationError(op, "parameter %q must be an array", name)
		}
		if n < 2 {
			return validationError(op,
				"parameter %q must hold at least two elements; pad a single value with an empty placeholder", name)
		}
	}

	set := 0
	for _, name := range hierarchyParams {
		if present(params[name]) {
			set++
		}
	}
	if set > 1 {
		return validationError(op, "at most one hierarchy filter (space_id, folder_id, list_id, task_id) may be set")
	}
	return nil
}

// expandPath substitutes {name} placeholders. An unresolved placeholder is a
// programmer error, not user input, and classifies as configuration.
func expandPath(op, template string, pathVals map[string]string) (string, *Error) {
	path := template
	for name, val := range pathVals {
		if val == "" {
			return "", configurationError(op, "empty path value for %q", name)
		}
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(val))
	}
	if i := strings.IndexByte(path, '{'); i >= 0 {
		end := strings.IndexByte(path[i:], '}')
		if end < 0 {
			end = len(path) - i
		}
		return "", configurationError(op, "unresolved path placeholder %s", path[i:i+end+1])
	}
	return path, nil
}

// encodeQuery renders params deterministically (url.Values sorts keys).
// Slices repeat the key once per element, empty padding elements included,
// matching what ClickUp's array filters expect on the wire.
func encodeQuery(params Params) string {
	v := url.Values{}
	for key, raw := range params {
		switch t := raw.(type) {
		case nil:
			continue
		case string:
			if t != "" {
				v.Set(key, t)
			}
		case bool:
			v.Set(key, strconv.FormatBool(t))
		case int:
			v.Set(key, strconv.Itoa(t))
		case int64:
			v.Set(key, strconv.FormatInt(t, 10))
		case float64:
			v.Set(key, strconv.FormatFloat(t, 'f', -1, 64))
		case []string:
			for _, s := range t {
				v.Add(key, s)
			}
		case []int:
			for _, n := range t {
				v.Add(key, strconv.Itoa(n))
			}
		case []int64:
			for _, n := range t {
				v.Add(key, strconv.FormatInt(n, 10))
			}
		default:
			v.Set(key, fmt.Sprint(t))
		}
	}
	return v.Encode()
}

func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	default:
		if n, ok := sliceLen(v); ok {
			return n > 0
		}
		return true
	}
}

func sliceLen(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return 0, false
	}
	return rv.Len(), true
}

func cloneParams(params Params) Params {
	out := make(Params, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	return out
}
