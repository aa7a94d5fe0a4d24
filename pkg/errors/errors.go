package errors

import "net/http"

// Body keys used by HTTPError.
const (
	KeyMessage = "message"
	KeyError   = "error"
)

// HTTPError is an error that already knows how it must be rendered.
type HTTPError struct {
	Status  int
	Key     string
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Body returns the JSON body for the error.
func (e *HTTPError) Body() map[string]string {
	key := e.Key
	if key == "" {
		key = KeyMessage
	}
	return map[string]string{key: e.Message}
}

// NewHTTPError returns an HTTPError rendered under the "message" key.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Key: KeyMessage, Message: message}
}

// NewHTTPErrorWithKey returns an HTTPError rendered under key.
func NewHTTPErrorWithKey(status int, key, message string) *HTTPError {
	return &HTTPError{Status: status, Key: key, Message: message}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Server error")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "Service unavailable")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrRouteNotFound       = NewHTTPErrorWithKey(http.StatusNotFound, KeyError, "API endpoint not found")
)
