package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// UnreachableMessage is the fixed message carried by transport-level
// failures: the request never produced a usable HTTP response.
const UnreachableMessage = "Network error: could not reach the backend. Is the server running?"

// APIError is the single failure shape surfaced by the connector.
// Status holds the HTTP status code of a server-reported failure;
// Status 0 means no response was received (network failure, request
// construction failure, or an undecodable success body).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// Unreachable reports whether the failure happened before any response
// was received, as opposed to the server rejecting the request.
func (e *APIError) Unreachable() bool {
	return e.Status == 0
}

func newTransportError() *APIError {
	return &APIError{Status: 0, Message: UnreachableMessage}
}

// errorBody matches the backend's failure payloads. FastAPI reports
// errors as {"detail": ...}; "message" is kept as a fallback for
// proxies and older handlers.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// normalizeError converts a non-2xx response into an APIError. The body
// is tried as JSON first (detail, then message); anything else falls
// back to a message synthesized from the status line so the message is
// never empty.
func normalizeError(status int, body []byte) *APIError {
	var payload errorBody
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		if payload.Detail != "" {
			return &APIError{Status: status, Message: payload.Detail}
		}
		if payload.Message != "" {
			return &APIError{Status: status, Message: payload.Message}
		}
	}

	return &APIError{
		Status:  status,
		Message: fmt.Sprintf("Server error: %d %s", status, http.StatusText(status)),
	}
}
