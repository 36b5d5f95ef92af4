package errors

import "fmt"

// HTTPError is an error that carries the HTTP status it should be served with.
// Delivery layers build these in their mapError functions; pkg/response
// resolves the status when writing the reply.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}
