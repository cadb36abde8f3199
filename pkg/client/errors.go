package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Every failure returned by the facade wraps exactly
// one of these, so callers can branch with errors.Is without re-deriving
// status-code logic per skill.
var (
	// ErrValidation covers HTTP 400/422 and local pre-flight validation
	// failures (bad arguments, missing files) raised before any network call.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound covers HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrPermission covers HTTP 401 and 403.
	ErrPermission = errors.New("permission denied")

	// ErrConflict covers HTTP 409 (version or uniqueness conflicts).
	ErrConflict = errors.New("conflict")

	// ErrAPI covers every other non-2xx status and transport failures
	// (timeouts, connection errors, unparseable response bodies).
	ErrAPI = errors.New("api error")
)

// StatusError is the concrete error produced for non-2xx responses. It
// carries the original status code and the server's message text (parsed
// from the JSON error body when possible, raw body text otherwise), and
// unwraps to one of the sentinel kinds above.
type StatusError struct {
	StatusCode int
	Message    string
	Body       string

	kind error
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (HTTP %d): %s", e.kind.Error(), e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.kind.Error(), e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// newStatusError classifies an HTTP status code and response body into a
// StatusError wrapping the matching sentinel kind.
func newStatusError(status int, body []byte) *StatusError {
	var kind error
	switch {
	case status == 400 || status == 422:
		kind = ErrValidation
	case status == 404:
		kind = ErrNotFound
	case status == 401 || status == 403:
		kind = ErrPermission
	case status == 409:
		kind = ErrConflict
	default:
		kind = ErrAPI
	}

	return &StatusError{
		StatusCode: status,
		Message:    extractMessage(body),
		Body:       string(body),
		kind:       kind,
	}
}

// extractMessage pulls a human-readable message out of a Confluence error
// body. Both API versions nest messages differently, so the common shapes
// are probed in order; unparseable bodies fall back to trimmed raw text.
func extractMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Title   string `json:"title"`
		Errors  []struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		} `json:"errors"`
	}

	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Message != "":
			return parsed.Message
		case parsed.Title != "":
			return parsed.Title
		case len(parsed.Errors) > 0 && parsed.Errors[0].Title != "":
			return parsed.Errors[0].Title
		case len(parsed.Errors) > 0:
			return parsed.Errors[0].Detail
		}
	}

	return strings.TrimSpace(string(body))
}
