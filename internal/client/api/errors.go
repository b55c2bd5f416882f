package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	// ErrUnavailable means the request never produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the backend rejected the credential. The gateway
	// has already cleared the session store when this is returned.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound matches 404 responses via errors.Is.
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx response carrying the backend's detail message.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets callers match 404 responses with errors.Is(err, ErrNotFound).
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// parseError builds the error for a non-2xx response. The backend reports
// failures as {"detail": "..."}; a generic message is used when the field
// is absent or the body is not JSON.
func parseError(statusCode int, body []byte) error {
	payload := struct {
		Detail string `json:"detail"`
	}{}

	message := "an error occurred"
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		message = payload.Detail
	}

	return &Error{StatusCode: statusCode, Message: message}
}
