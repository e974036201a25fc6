package exchange

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		want      string
	}{
		{"unknown", ErrorTypeUnknown, "UNKNOWN"},
		{"configuration", ErrorTypeConfiguration, "CONFIGURATION"},
		{"signing", ErrorTypeSigning, "SIGNING"},
		{"transport", ErrorTypeTransport, "TRANSPORT"},
		{"http_status", ErrorTypeHTTPStatus, "HTTP_STATUS"},
		{"deserialization", ErrorTypeDeserialization, "DESERIALIZATION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errorType.String())
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "without_status",
			err: &APIError{
				Type:    ErrorTypeConfiguration,
				Message: "secret is required",
			},
			want: "[remitano] CONFIGURATION: secret is required",
		},
		{
			name: "with_status",
			err: &APIError{
				Type:       ErrorTypeHTTPStatus,
				StatusCode: 404,
				Message:    "unexpected status 404",
			},
			want: "[remitano] HTTP_STATUS (404): unexpected status 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNewAPIError(t *testing.T) {
	err := NewAPIError(ErrorTypeSigning, "marshal body: boom")

	assert.Equal(t, ErrorTypeSigning, err.Type)
	assert.Equal(t, "marshal body: boom", err.Message)
	assert.False(t, err.Timestamp.IsZero())
}

func TestNewHTTPStatusError(t *testing.T) {
	err := NewHTTPStatusError(429, `{"error":"too many requests"}`)

	assert.Equal(t, ErrorTypeHTTPStatus, err.Type)
	assert.Equal(t, 429, err.StatusCode)
	assert.Equal(t, `{"error":"too many requests"}`, err.Body)
}

func TestNewDeserializationError(t *testing.T) {
	err := NewDeserializationError(`{"id":"x"}`, errors.New("mismatched type"))

	assert.Equal(t, ErrorTypeDeserialization, err.Type)
	assert.Equal(t, `{"id":"x"}`, err.Body)
	assert.Contains(t, err.Message, "mismatched type")
}

func TestErrorPredicates(t *testing.T) {
	configErr := NewAPIError(ErrorTypeConfiguration, "bad config")
	signErr := NewAPIError(ErrorTypeSigning, "bad payload")
	transportErr := NewAPIError(ErrorTypeTransport, "connection refused")
	statusErr := NewHTTPStatusError(500, "boom")
	decodeErr := NewDeserializationError("{}", errors.New("shape"))

	assert.True(t, IsConfigurationError(configErr))
	assert.True(t, IsSigningError(signErr))
	assert.True(t, IsTransportError(transportErr))
	assert.True(t, IsHTTPStatusError(statusErr))
	assert.True(t, IsDeserializationError(decodeErr))

	assert.False(t, IsConfigurationError(transportErr))
	assert.False(t, IsTransportError(statusErr))
	assert.False(t, IsHTTPStatusError(nil))
	assert.False(t, IsDeserializationError(errors.New("plain error")))
}
