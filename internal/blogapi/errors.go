package blogapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoToken is returned by authenticated operations before Login has
// stored a token on the client.
var ErrNoToken = errors.New("no authentication token set")

// APIError is the uniform failure for any non-2xx response. Message is the
// server-supplied "error" or "message" body field when one exists,
// otherwise a generic status line.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError extracts a human-readable message from an error response
// body. Unparseable or silent bodies fall back to the status code.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil {
			if payload.Error != "" {
				return &APIError{StatusCode: status, Message: payload.Error}
			}
			if payload.Message != "" {
				return &APIError{StatusCode: status, Message: payload.Message}
			}
		}
	}

	return &APIError{StatusCode: status, Message: fmt.Sprintf("HTTP error: status %d", status)}
}
