package exchange

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of a client error.
type ErrorType int

// Error type constants categorize failures for programmatic handling.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeConfiguration indicates bad or missing credentials or settings,
	// raised at construction.
	ErrorTypeConfiguration
	// ErrorTypeSigning indicates the request payload could not be prepared for
	// signing. It should not occur under normal operation but is reported
	// distinctly when it does.
	ErrorTypeSigning
	// ErrorTypeTransport indicates a network-level failure (connection, DNS,
	// TLS, timeout). Transport failures are never retried internally.
	ErrorTypeTransport
	// ErrorTypeHTTPStatus indicates the remote rejected the request with a
	// non-2xx status; the raw response body is preserved.
	ErrorTypeHTTPStatus
	// ErrorTypeDeserialization indicates a 2xx response body did not decode
	// into the caller's requested type.
	ErrorTypeDeserialization
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"CONFIGURATION",
		"SIGNING",
		"TRANSPORT",
		"HTTP_STATUS",
		"DESERIALIZATION",
	}[t]
}

// ErrClientClosed is returned when attempting to use a closed client.
var ErrClientClosed = errors.New("client is closed")

// APIError represents a structured error from the client or the remote API.
type APIError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// StatusCode is the HTTP status code, when the remote responded.
	StatusCode int `json:"status_code,omitempty"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Body is the raw response body, preserved for caller inspection.
	Body string `json:"body,omitempty"`
	// Timestamp is when the error occurred.
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("[remitano] %s (%d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("[remitano] %s: %s", e.Type, e.Message)
}

// NewAPIError creates a new APIError of the given type.
// The timestamp is automatically set to the current time.
func NewAPIError(errorType ErrorType, message string) *APIError {
	return &APIError{
		Type:      errorType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewHTTPStatusError creates an APIError for a non-2xx response,
// preserving the status code and the raw response body.
func NewHTTPStatusError(statusCode int, body string) *APIError {
	return &APIError{
		Type:       ErrorTypeHTTPStatus,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("unexpected status %d", statusCode),
		Body:       body,
		Timestamp:  time.Now(),
	}
}

// NewDeserializationError creates an APIError for a response body that
// did not decode into the caller's type. The raw body is preserved.
func NewDeserializationError(body string, cause error) *APIError {
	return &APIError{
		Type:      ErrorTypeDeserialization,
		Message:   fmt.Sprintf("decode response: %v", cause),
		Body:      body,
		Timestamp: time.Now(),
	}
}

// IsConfigurationError returns true if the error was raised for invalid
// credentials or settings.
func IsConfigurationError(err error) bool {
	if e, ok := err.(*APIError); ok {
		return e.Type == ErrorTypeConfiguration
	}
	return false
}

// IsSigningError returns true if the error occurred while preparing the
// request signature.
func IsSigningError(err error) bool {
	if e, ok := err.(*APIError); ok {
		return e.Type == ErrorTypeSigning
	}
	return false
}

// IsTransportError returns true if the error is a network-level failure.
func IsTransportError(err error) bool {
	if e, ok := err.(*APIError); ok {
		return e.Type == ErrorTypeTransport
	}
	return false
}

// IsHTTPStatusError returns true if the remote rejected the request
// with a non-2xx status.
func IsHTTPStatusError(err error) bool {
	if e, ok := err.(*APIError); ok {
		return e.Type == ErrorTypeHTTPStatus
	}
	return false
}

// IsDeserializationError returns true if the response body did not
// decode into the requested type.
func IsDeserializationError(err error) bool {
	if e, ok := err.(*APIError); ok {
		return e.Type == ErrorTypeDeserialization
	}
	return false
}
