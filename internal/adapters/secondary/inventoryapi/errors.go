package inventoryapi

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"vehicle-inventory-frontend/internal/core/domain"
)

// StatusError is a non-2xx answer that did not map to a more specific
// domain error. It unwraps to ErrUpstreamUnavailable (5xx) or
// ErrUpstreamRejected (4xx).
type StatusError struct {
	StatusCode int
	Detail     string
	kind       error
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("inventory api returned %d", e.StatusCode)
	}
	return fmt.Sprintf("inventory api returned %d: %s", e.StatusCode, e.Detail)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// StatusCode extracts the upstream status from err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

func checkStatus(code int, body []byte, notFound error) error {
	switch {
	case code >= 200 && code < 300:
		return nil

	case code == http.StatusNotFound && notFound != nil:
		return notFound

	case code == http.StatusBadRequest:
		if verr := parseFieldErrors(body); verr != nil {
			return verr
		}
		return &StatusError{StatusCode: code, Detail: detail(body), kind: domain.ErrUpstreamRejected}

	case code >= 500:
		return &StatusError{StatusCode: code, Detail: detail(body), kind: domain.ErrUpstreamUnavailable}

	default:
		return &StatusError{StatusCode: code, Detail: detail(body), kind: domain.ErrUpstreamRejected}
	}
}

// parseFieldErrors reads the {"field": ["msg", ...]} body the API sends
// on validation failure. "detail" and "non_field_errors" are kept under
// their own keys.
func parseFieldErrors(body []byte) *domain.ValidationError {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return nil
	}

	verr := domain.NewValidationError()
	for field, v := range raw {
		for _, msg := range flattenMessages(v) {
			verr.Add(field, msg)
		}
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

func flattenMessages(v interface{}) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []interface{}:
		var out []string
		for _, item := range t {
			out = append(out, flattenMessages(item)...)
		}
		return out
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var out []string
		for _, k := range keys {
			for _, msg := range flattenMessages(t[k]) {
				out = append(out, k+": "+msg)
			}
		}
		return out
	case nil:
		return nil
	default:
		return []string{fmt.Sprint(t)}
	}
}

// detail picks a short human message out of an error body.
func detail(body []byte) string {
	var d struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &d); err == nil && d.Detail != "" {
		return d.Detail
	}

	s := strings.TrimSpace(string(body))
	if strings.HasPrefix(s, "<") {
		// HTML error pages carry nothing worth showing.
		return ""
	}
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
