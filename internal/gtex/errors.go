package gtex

import (
	"fmt"
	"net/http"
)

// APIError is the uniform failure value of a Service call. Message is the
// classified, user-facing text; Status is the HTTP status code when one was
// received, 0 otherwise.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// classifyStatus maps an HTTP failure status to the user-facing message that
// is surfaced verbatim in tool results.
func classifyStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad request - please check your query parameters"
	case http.StatusNotFound:
		return "Not Found - the requested resource does not exist"
	case http.StatusUnprocessableEntity:
		return "Validation error - please check your parameter values"
	case http.StatusInternalServerError:
		return "Server error - the GTEx API is having issues, please retry later"
	default:
		return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
}

func newStatusError(status int) *APIError {
	return &APIError{Status: status, Message: classifyStatus(status)}
}

func newNetworkError(err error) *APIError {
	return &APIError{Message: fmt.Sprintf("Network error - unable to reach the GTEx API: %v", err)}
}

func newRequestError(err error) *APIError {
	return &APIError{Message: fmt.Sprintf("Request error: %v", err)}
}
