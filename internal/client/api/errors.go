package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nadocloud/nadoquest/internal/common"
)

// Error is the normalized form of a non-2xx backend response.
type Error struct {
	// Status is the HTTP status code.
	Status int
	// Message is the server-supplied "message" field when the body
	// parses as JSON, otherwise "<status> <status text>".
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error: %d: %s", e.Status, e.Message)
}

// Unwrap maps well-known status codes to the shared sentinel errors so
// callers can branch with errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return common.ErrUnauthorized
	case e.Status == http.StatusNotFound:
		return common.ErrNotFound
	case e.Status >= 500:
		return common.ErrInternal
	}
	return nil
}

// newError reads the response body and extracts a message, falling back
// to the status line when the body is absent or unparsable.
func newError(resp *http.Response) *Error {
	msg := resp.Status
	if msg == "" {
		msg = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err == nil && len(body) > 0 {
		var payload struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(body, &payload); jsonErr == nil && payload.Message != "" {
			msg = payload.Message
		}
	}

	return &Error{Status: resp.StatusCode, Message: msg}
}
