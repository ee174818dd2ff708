package apiclient

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// Error is a non-2xx response from the backend.
type Error struct {
	StatusCode int
	Message    string
	Body       json.RawMessage
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode extracts the HTTP status from err, or 0 when err is not an *Error.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 or 403 from the backend.
func IsUnauthorized(err error) bool {
	code := StatusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// newError picks the message in order: detail, message, error, status text.
func newError(resp *http.Response, raw []byte) *Error {
	e := &Error{StatusCode: resp.StatusCode}
	if json.Valid(raw) {
		e.Body = json.RawMessage(raw)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil {
		for _, key := range []string{"detail", "message", "error"} {
			if msg := messageFrom(fields[key]); msg != "" {
				e.Message = msg
				return e
			}
		}
	}

	e.Message = http.StatusText(resp.StatusCode)
	if e.Message == "" {
		e.Message = resp.Status
	}
	return e
}

// messageFrom accepts a plain string or a list of {"msg": ...} objects, which
// is how validation failures are reported.
func messageFrom(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &list); err == nil {
		msgs := make([]string, 0, len(list))
		for _, item := range list {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
