package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAcknowledged is returned when a write answers {"success": false}
var ErrNotAcknowledged = errors.New("server did not acknowledge the write")

// APIError is a non-2xx response from the backend
type APIError struct {
	Op         string
	StatusCode int
	// Message is the server's "error" field. Empty when the body had none.
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, msg)
}

// ServerMessage extracts the message of an APIError anywhere in err's chain
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
