package bookingsdk

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Stable machine-readable error kinds. Clients switch on these, not on the
// human-readable messages.
const (
	ErrorKindBadRequest   = "bad_request"
	ErrorKindUnauthorized = "unauthorized"
	ErrorKindNotFound     = "not_found"
	ErrorKindConflict     = "conflict"
	ErrorKindNoStock      = "no_stock"
	ErrorKindNotBorrowed  = "not_borrowed"
	ErrorKindForbidden    = "forbidden"
	ErrorKindServerError  = "server_error"
)

// APIError is the JSON error body every endpoint returns on failure. It
// doubles as the error type the SDK client surfaces, so server and client
// agree on the shape by construction.
type APIError struct {
	// StatusCode is the HTTP status the error was served with
	StatusCode int `json:"-"`

	// Kind is the stable machine-readable error code
	Kind string `json:"error"`

	// Message is a human-readable description
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// parseAPIError reads an error body from a non-2xx response.
func parseAPIError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return fmt.Errorf("read error response: %w", err)
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Kind == "" {
		apiErr.Kind = ErrorKindServerError
		apiErr.Message = fmt.Sprintf("unexpected response (status %d)", resp.StatusCode)
	}
	return apiErr
}
